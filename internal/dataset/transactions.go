package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pushrec-dev/pushrec/internal/model"
)

const dateFormat = "2006-01-02"

// ErrInconsistentClient reports transaction rows that disagree on the
// identity fields every row of a client file replicates.
var ErrInconsistentClient = errors.New("inconsistent client identity fields")

// Transaction columns are resolved by header name so the optional
// balance column may appear at any position.
const (
	colClientCode = "client_code"
	colName       = "name"
	colStatus     = "status"
	colCity       = "city"
	colCategory   = "category"
	colAmount     = "amount"
	colDate       = "date"
	colBalance    = "avg_monthly_balance_KZT"
)

var requiredTransactionColumns = []string{
	colClientCode, colName, colStatus, colCity, colCategory, colAmount, colDate,
}

// ReadTransactions reads one client's transaction CSV.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[name] = i
	}
	for _, name := range requiredTransactionColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("transactions CSV missing column %q", name)
		}
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := unmarshalTransaction(rec, cols, len(records[0]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}

	if err := checkIdentity(txns); err != nil {
		return nil, err
	}
	return txns, nil
}

func unmarshalTransaction(rec []string, cols map[string]int, numFields int) (model.Transaction, error) {
	if len(rec) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(rec))
	}

	code, err := strconv.Atoi(rec[cols[colClientCode]])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing client_code %q: %w", rec[cols[colClientCode]], err)
	}

	amount, err := parseAmount(rec[cols[colAmount]])
	if err != nil {
		return model.Transaction{}, err
	}

	date, err := time.Parse(dateFormat, rec[cols[colDate]])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec[cols[colDate]], err)
	}

	txn := model.Transaction{
		ClientCode: code,
		Name:       rec[cols[colName]],
		Status:     rec[cols[colStatus]],
		City:       rec[cols[colCity]],
		Category:   rec[cols[colCategory]],
		Amount:     amount,
		Date:       date,
	}

	if idx, ok := cols[colBalance]; ok && rec[idx] != "" {
		balance, err := decimal.NewFromString(rec[idx])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing avg_monthly_balance_KZT %q: %w", rec[idx], err)
		}
		txn.AvgMonthlyBalance = decimal.NullDecimal{Decimal: balance, Valid: true}
	}

	return txn, nil
}

// parseAmount parses a non-negative currency value.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("negative amount %q", s)
	}
	return d, nil
}

// checkIdentity verifies that all rows describe the same client. The
// identity fields are redundant in the source format, so disagreement
// means the file is corrupt.
func checkIdentity(txns []model.Transaction) error {
	if len(txns) == 0 {
		return nil
	}
	first := txns[0]
	for i, txn := range txns[1:] {
		same := txn.ClientCode == first.ClientCode &&
			txn.Name == first.Name &&
			txn.Status == first.Status &&
			txn.City == first.City &&
			txn.AvgMonthlyBalance.Valid == first.AvgMonthlyBalance.Valid &&
			(!txn.AvgMonthlyBalance.Valid || txn.AvgMonthlyBalance.Decimal.Equal(first.AvgMonthlyBalance.Decimal))
		if !same {
			return fmt.Errorf("row %d: %w", i+3, ErrInconsistentClient)
		}
	}
	return nil
}
