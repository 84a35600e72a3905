package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pushrec-dev/pushrec/internal/model"
)

// Header is the CSV header for the recommendations output table.
const Header = "client_code,product,push_notification"

const (
	resultNumFields  = 3
	colResultCode    = 0
	colResultProduct = 1
	colResultPush    = 2
)

// WriteRecommendations writes the output table (including header).
func WriteRecommendations(w io.Writer, recs []model.Recommendation) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range recs {
		if err := cw.Write(MarshalRecommendation(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadRecommendations reads a previously written output table.
func ReadRecommendations(r io.Reader) ([]model.Recommendation, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = resultNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading recommendations CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var recs []model.Recommendation
	for i, rec := range records[1:] {
		rr, err := UnmarshalRecommendation(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		recs = append(recs, rr)
	}
	return recs, nil
}

// MarshalRecommendation converts a Recommendation to a CSV row.
func MarshalRecommendation(rec model.Recommendation) []string {
	row := make([]string, resultNumFields)
	row[colResultCode] = strconv.Itoa(rec.ClientCode)
	row[colResultProduct] = rec.Product
	row[colResultPush] = rec.Push
	return row
}

// UnmarshalRecommendation converts a CSV row to a Recommendation.
func UnmarshalRecommendation(record []string) (model.Recommendation, error) {
	if len(record) != resultNumFields {
		return model.Recommendation{}, fmt.Errorf("expected %d fields, got %d", resultNumFields, len(record))
	}

	code, err := strconv.Atoi(record[colResultCode])
	if err != nil {
		return model.Recommendation{}, fmt.Errorf("parsing client_code %q: %w", record[colResultCode], err)
	}

	return model.Recommendation{
		ClientCode: code,
		Product:    record[colResultProduct],
		Push:       record[colResultPush],
	}, nil
}
