package catalog

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushrec-dev/pushrec/internal/analyzer"
)

func sampleFeatures() analyzer.Features {
	return analyzer.Features{
		Name:       "Айгерим",
		AvgBalance: dec("1500000"),
		SpendingByCategory: map[string]decimal.Decimal{
			CategoryTaxi:       dec("50000"),
			CategoryTravel:     dec("30000"),
			"Продукты питания": dec("20000"),
		},
		TotalSpending:    dec("100000"),
		TopSpendingMonth: 6,
	}
}

func TestPush_NeverEmpty(t *testing.T) {
	f := sampleFeatures()
	for _, p := range Products {
		assert.NotEmpty(t, p.Push(f), "product %s", p.Name)
	}
}

func TestTravelPush(t *testing.T) {
	f := sampleFeatures()
	p, ok := ByName(TravelCard)
	require.True(t, ok)

	text := p.Push(f)
	assert.Contains(t, text, "Айгерим")
	assert.Contains(t, text, "в июне")
	// 4% of taxi + travel + hotels spending (80000).
	assert.Contains(t, text, "3 200 ₸")
}

func TestCreditPush(t *testing.T) {
	f := sampleFeatures()
	p, ok := ByName(CreditCard)
	require.True(t, ok)

	text := p.Push(f)
	assert.Contains(t, text, "Айгерим")
	assert.Contains(t, text, "Такси, Путешествия, Продукты питания")
}

func TestPush_UnknownProductFallsBack(t *testing.T) {
	text := Product{Name: "Карта лояльности"}.Push(sampleFeatures())
	assert.Equal(t, fallbackPush, text)
}

func TestPush_NameAppearsVerbatim(t *testing.T) {
	f := sampleFeatures()
	f.Name = "Бауыржан"
	for _, p := range Products {
		assert.True(t, strings.Contains(p.Push(f), "Бауыржан"), "product %s", p.Name)
	}
}
