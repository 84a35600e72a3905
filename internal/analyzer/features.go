package analyzer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/pushrec-dev/pushrec/internal/model"
)

// ErrEmptyInput reports a client whose transaction or transfer history
// has no records. Means and maxima are undefined on empty history, so
// such clients cannot be scored.
var ErrEmptyInput = errors.New("empty client history")

// fallbackMonth is reported as the top spending month when no monthly
// spending exists at all. Policy constant, not an inference.
const fallbackMonth = 6

// salaryWindowMonths is the assumed history window when estimating the
// average balance from salary inflows.
const salaryWindowMonths = 3

// TransferStat aggregates all transfers of one type.
type TransferStat struct {
	Amount decimal.Decimal
	Count  int
}

// CategoryAmount is a spending total for one category.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// Features holds everything scoring and rendering need to know about
// one client. Computed once per client and never mutated afterwards.
type Features struct {
	ClientCode int
	Name       string
	Status     string
	City       string

	// AvgBalance comes from the transaction data when present, else
	// it is estimated as total salary inflow over the assumed window.
	AvgBalance decimal.Decimal

	SpendingByCategory map[string]decimal.Decimal
	TotalSpending      decimal.Decimal
	AvgTransaction     decimal.Decimal
	MonthlySpending    map[int]decimal.Decimal
	TransferStats      map[model.TransferType]TransferStat

	HasLoanPayments  bool
	HasRegularSalary bool // kept for parity with the source analytics; no formula consults it
	CashbackReceived decimal.Decimal
	ATMWithdrawals   decimal.Decimal

	TopSpendingMonth int
}

// Analyze derives Features from one client's transaction and transfer
// history. Pure: identical records in any order yield identical
// features.
func Analyze(txns []model.Transaction, transfers []model.Transfer) (Features, error) {
	if len(txns) == 0 {
		return Features{}, fmt.Errorf("transactions: %w", ErrEmptyInput)
	}
	if len(transfers) == 0 {
		return Features{}, fmt.Errorf("transfers: %w", ErrEmptyInput)
	}

	first := txns[0]
	f := Features{
		ClientCode:         first.ClientCode,
		Name:               first.Name,
		Status:             first.Status,
		City:               first.City,
		SpendingByCategory: make(map[string]decimal.Decimal),
		MonthlySpending:    make(map[int]decimal.Decimal),
		TransferStats:      make(map[model.TransferType]TransferStat),
	}

	for _, txn := range txns {
		f.SpendingByCategory[txn.Category] = f.SpendingByCategory[txn.Category].Add(txn.Amount)
		f.TotalSpending = f.TotalSpending.Add(txn.Amount)
		month := int(txn.Date.Month())
		f.MonthlySpending[month] = f.MonthlySpending[month].Add(txn.Amount)
	}
	f.AvgTransaction = f.TotalSpending.Div(decimal.NewFromInt(int64(len(txns))))

	salaryCount := 0
	for _, tr := range transfers {
		stat := f.TransferStats[tr.Type]
		stat.Amount = stat.Amount.Add(tr.Amount)
		stat.Count++
		f.TransferStats[tr.Type] = stat

		switch tr.Type {
		case model.TransferSalaryIn:
			salaryCount++
		case model.TransferLoanPaymentOut:
			f.HasLoanPayments = true
		}
	}
	f.HasRegularSalary = salaryCount >= 2
	f.CashbackReceived = f.TransferStats[model.TransferCashbackIn].Amount
	f.ATMWithdrawals = f.TransferStats[model.TransferATMWithdrawal].Amount

	if first.AvgMonthlyBalance.Valid {
		f.AvgBalance = first.AvgMonthlyBalance.Decimal
	} else {
		salary := f.TransferStats[model.TransferSalaryIn].Amount
		f.AvgBalance = salary.Div(decimal.NewFromInt(salaryWindowMonths))
	}

	f.TopSpendingMonth = topMonth(f.MonthlySpending)
	return f, nil
}

// topMonth returns the month with the highest spending. Ties keep the
// earliest month so repeated runs agree.
func topMonth(monthly map[int]decimal.Decimal) int {
	best := 0
	var bestAmount decimal.Decimal
	for month := 1; month <= 12; month++ {
		amount, ok := monthly[month]
		if !ok {
			continue
		}
		if best == 0 || amount.GreaterThan(bestAmount) {
			best, bestAmount = month, amount
		}
	}
	if best == 0 {
		return fallbackMonth
	}
	return best
}

// SpendingIn sums spending over the given categories. Categories the
// client never spent in contribute zero.
func (f Features) SpendingIn(categories ...string) decimal.Decimal {
	total := decimal.Zero
	for _, c := range categories {
		total = total.Add(f.SpendingByCategory[c])
	}
	return total
}

// TopCategories returns the n highest-spend categories, largest first.
// Equal amounts order alphabetically so output is reproducible.
func (f Features) TopCategories(n int) []CategoryAmount {
	all := make([]CategoryAmount, 0, len(f.SpendingByCategory))
	for cat, amount := range f.SpendingByCategory {
		all = append(all, CategoryAmount{Category: cat, Amount: amount})
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].Amount.Equal(all[j].Amount) {
			return all[i].Amount.GreaterThan(all[j].Amount)
		}
		return all[i].Category < all[j].Category
	})
	if n < len(all) {
		all = all[:n]
	}
	return all
}
