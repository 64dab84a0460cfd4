// Package odds reads head-to-head betting odds for MMA events and compares them with the
// model's probabilities.
package odds

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yourusername/fight-predictor/internal/models"
)

var hundred = decimal.NewFromInt(100)

// AmericanToDecimal converts American odds to decimal odds rounded to two places.
// +150 gives 2.50 and -150 gives 1.67.
func AmericanToDecimal(american int) (decimal.Decimal, error) {
	if american == 0 {
		return decimal.Zero, fmt.Errorf("invalid American odds: cannot be 0")
	}

	odds := decimal.NewFromInt(int64(american))
	if american > 0 {
		return odds.Div(hundred).Add(decimal.NewFromInt(1)).Round(2), nil
	}
	return hundred.Div(odds.Abs()).Add(decimal.NewFromInt(1)).Round(2), nil
}

// AmericanToImpliedProbability converts American odds to an implied probability in percent,
// rounded to one place. +150 gives 40.0 and -150 gives 60.0.
func AmericanToImpliedProbability(american int) (decimal.Decimal, error) {
	if american == 0 {
		return decimal.Zero, fmt.Errorf("invalid American odds: cannot be 0")
	}

	odds := decimal.NewFromInt(int64(american))
	if american > 0 {
		return hundred.Div(odds.Add(hundred)).Mul(hundred).Round(1), nil
	}
	abs := odds.Abs()
	return abs.Div(abs.Add(hundred)).Mul(hundred).Round(1), nil
}

// newFighterOdds prices one side of a market. An invalid price leaves the derived fields
// at zero.
func newFighterOdds(name string, american int) models.FighterOdds {
	out := models.FighterOdds{Name: name, AmericanOdds: american}
	if d, err := AmericanToDecimal(american); err == nil {
		out.DecimalOdds = d.InexactFloat64()
	}
	if p, err := AmericanToImpliedProbability(american); err == nil {
		out.ImpliedProbability = p.InexactFloat64()
	}
	return out
}
