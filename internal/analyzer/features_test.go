package analyzer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushrec-dev/pushrec/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func txn(category string, amount string, when time.Time) model.Transaction {
	return model.Transaction{
		ClientCode: 1,
		Name:       "Айгерим",
		Status:     "Премиальный клиент",
		City:       "Алматы",
		Category:   category,
		Amount:     dec(amount),
		Date:       when,
	}
}

func transfer(kind model.TransferType, amount string, when time.Time) model.Transfer {
	return model.Transfer{ClientCode: 1, Type: kind, Amount: dec(amount), Date: when}
}

func TestAnalyze_Aggregates(t *testing.T) {
	txns := []model.Transaction{
		txn("Такси", "100", date(2025, 6, 1)),
		txn("Такси", "200", date(2025, 6, 15)),
		txn("Отели", "300", date(2025, 7, 2)),
	}
	transfers := []model.Transfer{
		transfer(model.TransferSalaryIn, "200000", date(2025, 6, 1)),
	}

	f, err := Analyze(txns, transfers)
	require.NoError(t, err)

	assert.Equal(t, 1, f.ClientCode)
	assert.Equal(t, "Айгерим", f.Name)
	assert.Equal(t, "Премиальный клиент", f.Status)
	assert.Equal(t, "Алматы", f.City)

	assert.True(t, f.SpendingByCategory["Такси"].Equal(dec("300")))
	assert.True(t, f.SpendingByCategory["Отели"].Equal(dec("300")))
	assert.True(t, f.TotalSpending.Equal(dec("600")))
	assert.True(t, f.AvgTransaction.Equal(dec("200")))

	assert.True(t, f.MonthlySpending[6].Equal(dec("300")))
	assert.True(t, f.MonthlySpending[7].Equal(dec("300")))
}

func TestAnalyze_OrderIndependent(t *testing.T) {
	txns := []model.Transaction{
		txn("Такси", "100", date(2025, 6, 1)),
		txn("Отели", "300", date(2025, 7, 2)),
		txn("Такси", "200", date(2025, 6, 15)),
	}
	transfers := []model.Transfer{
		transfer(model.TransferSalaryIn, "200000", date(2025, 6, 1)),
		transfer(model.TransferCashbackIn, "1500", date(2025, 6, 20)),
	}

	reversedTxns := []model.Transaction{txns[2], txns[1], txns[0]}
	reversedTransfers := []model.Transfer{transfers[1], transfers[0]}

	f1, err := Analyze(txns, transfers)
	require.NoError(t, err)
	f2, err := Analyze(reversedTxns, reversedTransfers)
	require.NoError(t, err)

	assert.True(t, f1.TotalSpending.Equal(f2.TotalSpending))
	assert.True(t, f1.AvgTransaction.Equal(f2.AvgTransaction))
	assert.True(t, f1.AvgBalance.Equal(f2.AvgBalance))
	assert.Equal(t, f1.TopSpendingMonth, f2.TopSpendingMonth)
	require.Len(t, f2.SpendingByCategory, len(f1.SpendingByCategory))
	for cat, amount := range f1.SpendingByCategory {
		assert.True(t, amount.Equal(f2.SpendingByCategory[cat]), "category %s", cat)
	}
	for kind, stat := range f1.TransferStats {
		assert.Equal(t, stat.Count, f2.TransferStats[kind].Count)
		assert.True(t, stat.Amount.Equal(f2.TransferStats[kind].Amount), "type %s", kind)
	}
}

func TestAnalyze_BalanceFromTransactions(t *testing.T) {
	explicit := txn("Такси", "100", date(2025, 6, 1))
	explicit.AvgMonthlyBalance = decimal.NullDecimal{Decimal: dec("1500000"), Valid: true}

	f, err := Analyze(
		[]model.Transaction{explicit},
		[]model.Transfer{transfer(model.TransferSalaryIn, "200000", date(2025, 6, 1))},
	)
	require.NoError(t, err)
	assert.True(t, f.AvgBalance.Equal(dec("1500000")))
}

func TestAnalyze_BalanceEstimatedFromSalary(t *testing.T) {
	f, err := Analyze(
		[]model.Transaction{txn("Такси", "100", date(2025, 6, 1))},
		[]model.Transfer{
			transfer(model.TransferSalaryIn, "200000", date(2025, 6, 1)),
			transfer(model.TransferSalaryIn, "200000", date(2025, 7, 1)),
		},
	)
	require.NoError(t, err)

	// 400000 over the assumed 3-month window.
	assert.True(t, f.AvgBalance.Round(2).Equal(dec("133333.33")), "got %s", f.AvgBalance)
}

func TestAnalyze_TransferFlags(t *testing.T) {
	txns := []model.Transaction{txn("Такси", "100", date(2025, 6, 1))}

	f, err := Analyze(txns, []model.Transfer{
		transfer(model.TransferSalaryIn, "200000", date(2025, 6, 1)),
		transfer(model.TransferSalaryIn, "200000", date(2025, 7, 1)),
		transfer(model.TransferLoanPaymentOut, "35000", date(2025, 7, 3)),
		transfer(model.TransferCashbackIn, "1500", date(2025, 7, 5)),
		transfer(model.TransferCashbackIn, "500", date(2025, 7, 15)),
		transfer(model.TransferATMWithdrawal, "40000", date(2025, 7, 20)),
	})
	require.NoError(t, err)

	assert.True(t, f.HasLoanPayments)
	assert.True(t, f.HasRegularSalary)
	assert.True(t, f.CashbackReceived.Equal(dec("2000")))
	assert.True(t, f.ATMWithdrawals.Equal(dec("40000")))

	stat := f.TransferStats[model.TransferSalaryIn]
	assert.Equal(t, 2, stat.Count)
	assert.True(t, stat.Amount.Equal(dec("400000")))
}

func TestAnalyze_SingleSalaryNotRegular(t *testing.T) {
	f, err := Analyze(
		[]model.Transaction{txn("Такси", "100", date(2025, 6, 1))},
		[]model.Transfer{transfer(model.TransferSalaryIn, "200000", date(2025, 6, 1))},
	)
	require.NoError(t, err)
	assert.False(t, f.HasRegularSalary)
	assert.False(t, f.HasLoanPayments)
}

func TestAnalyze_TopSpendingMonth(t *testing.T) {
	f, err := Analyze(
		[]model.Transaction{
			txn("Такси", "100", date(2025, 6, 1)),
			txn("Такси", "500", date(2025, 7, 1)),
			txn("Такси", "200", date(2025, 8, 1)),
		},
		[]model.Transfer{transfer(model.TransferSalaryIn, "200000", date(2025, 6, 1))},
	)
	require.NoError(t, err)
	assert.Equal(t, 7, f.TopSpendingMonth)
}

func TestTopMonth_TieKeepsEarliest(t *testing.T) {
	monthly := map[int]decimal.Decimal{
		5: dec("300"),
		6: dec("300"),
		2: dec("100"),
	}
	assert.Equal(t, 5, topMonth(monthly))
}

func TestTopMonth_EmptyFallsBack(t *testing.T) {
	assert.Equal(t, fallbackMonth, topMonth(nil))
}

func TestAnalyze_EmptyInput(t *testing.T) {
	txns := []model.Transaction{txn("Такси", "100", date(2025, 6, 1))}
	transfers := []model.Transfer{transfer(model.TransferSalaryIn, "200000", date(2025, 6, 1))}

	_, err := Analyze(nil, transfers)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Analyze(txns, nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestTopCategories(t *testing.T) {
	f := Features{SpendingByCategory: map[string]decimal.Decimal{
		"Такси":            dec("300"),
		"Отели":            dec("500"),
		"Продукты питания": dec("100"),
		"АЗС":              dec("300"),
	}}

	top := f.TopCategories(3)
	require.Len(t, top, 3)
	assert.Equal(t, "Отели", top[0].Category)
	// Equal amounts order alphabetically.
	assert.Equal(t, "АЗС", top[1].Category)
	assert.Equal(t, "Такси", top[2].Category)
}

func TestTopCategories_FewerThanRequested(t *testing.T) {
	f := Features{SpendingByCategory: map[string]decimal.Decimal{"Такси": dec("300")}}
	assert.Len(t, f.TopCategories(3), 1)
}

func TestSpendingIn_MissingCategoriesAreZero(t *testing.T) {
	f := Features{SpendingByCategory: map[string]decimal.Decimal{"Такси": dec("300")}}
	assert.True(t, f.SpendingIn("Такси", "Отели").Equal(dec("300")))
}
