package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/pushrec-dev/pushrec/internal/analyzer"
	"github.com/pushrec-dev/pushrec/internal/model"
)

// Scoring constants. All of these are product policy, not values
// derived from data.
var (
	travelCashbackRate  = decimal.NewFromFloat(0.04)
	premiumCashbackRate = decimal.NewFromFloat(0.04)
	creditCashbackRate  = decimal.NewFromFloat(0.10)
	creditLoanBonus     = decimal.NewFromFloat(1.2)
	fxOperationWeight   = decimal.NewFromInt(10000)
	loanBase            = decimal.NewFromInt(50000)
	loanStrainBonus     = decimal.NewFromInt(70000)
	depositAnnualRate   = decimal.NewFromFloat(0.145)
	investmentFlat      = decimal.NewFromInt(50000)
	goldShare           = decimal.NewFromFloat(0.05)

	savingsMultiplier       = decimal.NewFromFloat(1.1)
	accumulativeMultiplier  = decimal.NewFromFloat(1.0)
	multiCurrencyMultiplier = decimal.NewFromFloat(0.9)

	premiumHighBalance   = decimal.NewFromInt(6_000_000)
	premiumMidBalance    = decimal.NewFromInt(1_000_000)
	strainSpending       = decimal.NewFromInt(500_000)
	strainBalance        = decimal.NewFromInt(300_000)
	investmentMinBalance = decimal.NewFromInt(1_000_000)

	monthsPerYear = decimal.NewFromInt(12)
)

// ProductScore pairs a catalog product with its computed score.
type ProductScore struct {
	Product string
	Score   decimal.Decimal
}

// Scores computes the full score table in catalog order. Every catalog
// product appears exactly once; no formula produces a negative value
// and no clamping is applied.
func Scores(f analyzer.Features) []ProductScore {
	out := make([]ProductScore, len(Products))
	for i, p := range Products {
		out[i] = ProductScore{Product: p.Name, Score: p.Score(f)}
	}
	return out
}

// Best returns the highest-scoring product for the client. Ties keep
// the earlier catalog entry.
func Best(f analyzer.Features) Product {
	best := Products[0]
	bestScore := best.Score(f)
	for _, p := range Products[1:] {
		if s := p.Score(f); s.GreaterThan(bestScore) {
			best, bestScore = p, s
		}
	}
	return best
}

// travelScore: 4% cashback on travel-adjacent spending.
func travelScore(f analyzer.Features) decimal.Decimal {
	spend := f.SpendingIn(CategoryTaxi, CategoryTravel, CategoryHotels, CategoryGasStations)
	return spend.Mul(travelCashbackRate)
}

// premiumScore: tier bonus by balance plus 4% cashback on premium
// categories.
func premiumScore(f analyzer.Features) decimal.Decimal {
	var tier int64
	switch {
	case f.AvgBalance.GreaterThan(premiumHighBalance):
		tier = 4
	case f.AvgBalance.GreaterThan(premiumMidBalance):
		tier = 3
	default:
		tier = 2
	}
	spend := f.SpendingIn(CategoryRestaurants, CategoryJewelry, CategoryCosmetics)
	return decimal.NewFromInt(tier).Add(spend.Mul(premiumCashbackRate))
}

// creditScore: 10% of the top-3 spending categories, boosted for
// clients already paying off a loan.
func creditScore(f analyzer.Features) decimal.Decimal {
	top := decimal.Zero
	for _, c := range f.TopCategories(3) {
		top = top.Add(c.Amount)
	}
	score := top.Mul(creditCashbackRate)
	if f.HasLoanPayments {
		score = score.Mul(creditLoanBonus)
	}
	return score
}

// fxScore: a fixed weight per FX operation.
func fxScore(f analyzer.Features) decimal.Decimal {
	ops := f.TransferStats[model.TransferFXBuy].Count + f.TransferStats[model.TransferFXSell].Count
	return decimal.NewFromInt(int64(ops)).Mul(fxOperationWeight)
}

// cashLoanScore: base for existing debt, strain bonus when heavy
// spending meets a low balance. Both strain conditions are required.
func cashLoanScore(f analyzer.Features) decimal.Decimal {
	score := decimal.Zero
	if f.HasLoanPayments {
		score = score.Add(loanBase)
	}
	if f.TotalSpending.GreaterThan(strainSpending) && f.AvgBalance.LessThan(strainBalance) {
		score = score.Add(loanStrainBonus)
	}
	return score
}

// depositScore builds a deposit formula: estimated monthly yield on
// the average balance at the nominal annual rate, scaled per product.
func depositScore(multiplier decimal.Decimal) func(analyzer.Features) decimal.Decimal {
	return func(f analyzer.Features) decimal.Decimal {
		monthlyYield := f.AvgBalance.Mul(depositAnnualRate).Div(monthsPerYear)
		return monthlyYield.Mul(multiplier)
	}
}

// investmentScore: binary eligibility gate on the balance, no partial
// credit.
func investmentScore(f analyzer.Features) decimal.Decimal {
	if f.AvgBalance.GreaterThan(investmentMinBalance) {
		return investmentFlat
	}
	return decimal.Zero
}

// goldScore: diversification proxy proportional to the balance.
func goldScore(f analyzer.Features) decimal.Decimal {
	return f.AvgBalance.Mul(goldShare)
}
