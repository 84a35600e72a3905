package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferType tags a money-movement event. The vocabulary in the
// source data is open; constants cover the types consulted by
// feature extraction and scoring.
type TransferType string

const (
	TransferSalaryIn       TransferType = "salary_in"
	TransferCashbackIn     TransferType = "cashback_in"
	TransferATMWithdrawal  TransferType = "atm_withdrawal"
	TransferLoanPaymentOut TransferType = "loan_payment_out"
	TransferFXBuy          TransferType = "fx_buy"
	TransferFXSell         TransferType = "fx_sell"
)

// Transaction is one spending event from a client's history. The
// identity fields (client code, name, status, city, balance) are
// replicated on every row of a client's file.
type Transaction struct {
	ClientCode        int
	Name              string
	Status            string
	City              string
	Category          string
	Amount            decimal.Decimal
	Date              time.Time
	AvgMonthlyBalance decimal.NullDecimal // optional column, same on all rows
}

// Transfer is one money-movement event.
type Transfer struct {
	ClientCode int
	Type       TransferType
	Amount     decimal.Decimal
	Date       time.Time
}

// Recommendation is one output row: the chosen product and the
// rendered push notification for a client.
type Recommendation struct {
	ClientCode int
	Product    string
	Push       string
}
