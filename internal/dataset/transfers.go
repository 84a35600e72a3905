package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pushrec-dev/pushrec/internal/model"
)

const (
	transferNumFields = 4
	colTransferCode   = 0
	colTransferType   = 1
	colTransferAmount = 2
	colTransferDate   = 3
)

// ReadTransfers reads one client's transfer CSV.
func ReadTransfers(r io.Reader) ([]model.Transfer, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = transferNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transfers CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var transfers []model.Transfer
	for i, rec := range records[1:] {
		tr, err := unmarshalTransfer(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		transfers = append(transfers, tr)
	}
	return transfers, nil
}

func unmarshalTransfer(rec []string) (model.Transfer, error) {
	code, err := strconv.Atoi(rec[colTransferCode])
	if err != nil {
		return model.Transfer{}, fmt.Errorf("parsing client_code %q: %w", rec[colTransferCode], err)
	}

	amount, err := parseAmount(rec[colTransferAmount])
	if err != nil {
		return model.Transfer{}, err
	}

	date, err := time.Parse(dateFormat, rec[colTransferDate])
	if err != nil {
		return model.Transfer{}, fmt.Errorf("parsing date %q: %w", rec[colTransferDate], err)
	}

	return model.Transfer{
		ClientCode: code,
		Type:       model.TransferType(rec[colTransferType]),
		Amount:     amount,
		Date:       date,
	}, nil
}
