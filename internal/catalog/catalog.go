// Package catalog holds the fixed set of recommendable products. Each
// product carries its own scoring formula and push template, so a
// product name that is not in the catalog cannot reach scoring or
// rendering through normal flow.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/pushrec-dev/pushrec/internal/analyzer"
)

// Catalog product names, as they appear in the output table.
const (
	TravelCard           = "Карта для путешествий"
	PremiumCard          = "Премиальная карта"
	CreditCard           = "Кредитная карта"
	FXExchange           = "Обмен валют"
	CashLoan             = "Кредит наличными"
	MultiCurrencyDeposit = "Депозит Мультивалютный (KZT/USD/RUB/EUR)"
	SavingsDeposit       = "Депозит Сберегательный (защита KDIF)"
	AccumulativeDeposit  = "Депозит Накопительный"
	Investments          = "Инвестиции"
	GoldBars             = "Золотые слитки"
)

// Spending categories consulted by the formulas.
const (
	CategoryTaxi        = "Такси"
	CategoryTravel      = "Путешествия"
	CategoryHotels      = "Отели"
	CategoryGasStations = "АЗС"
	CategoryRestaurants = "Кафе и рестораны"
	CategoryJewelry     = "Ювелирные украшения"
	CategoryCosmetics   = "Косметика и Парфюмерия"
)

// Product is one entry of the fixed catalog.
type Product struct {
	Name  string
	score func(analyzer.Features) decimal.Decimal
	push  func(analyzer.Features) string
}

// Score applies the product's scoring formula.
func (p Product) Score(f analyzer.Features) decimal.Decimal {
	if p.score == nil {
		return decimal.Zero
	}
	return p.score(f)
}

// Push renders the product's notification text. A product outside the
// catalog degrades to a generic offer.
func (p Product) Push(f analyzer.Features) string {
	if p.push == nil {
		return fallbackPush
	}
	return p.push(f)
}

// Products is the fixed catalog. Declaration order is the tie-break
// order: the first product reaching the maximum score wins.
var Products = []Product{
	{Name: TravelCard, score: travelScore, push: travelPush},
	{Name: PremiumCard, score: premiumScore, push: premiumPush},
	{Name: CreditCard, score: creditScore, push: creditPush},
	{Name: FXExchange, score: fxScore, push: fxPush},
	{Name: CashLoan, score: cashLoanScore, push: cashLoanPush},
	{Name: MultiCurrencyDeposit, score: depositScore(multiCurrencyMultiplier), push: depositPush},
	{Name: SavingsDeposit, score: depositScore(savingsMultiplier), push: depositPush},
	{Name: AccumulativeDeposit, score: depositScore(accumulativeMultiplier), push: depositPush},
	{Name: Investments, score: investmentScore, push: investmentPush},
	{Name: GoldBars, score: goldScore, push: goldPush},
}

// ByName looks a product up by its catalog name.
func ByName(name string) (Product, bool) {
	for _, p := range Products {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}
