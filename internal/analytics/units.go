package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"

	"noumi/internal/core"
)

// Unit is the period an amount is expressed in.
type Unit string

const (
	UnitMonthly Unit = "monthly"
	UnitWeekly  Unit = "weekly"
)

// weeksPerMonth is the conversion the weekly recap has always used. It is
// only applied when a caller asks for weekly amounts explicitly.
var weeksPerMonth = decimal.NewFromInt(4)

// AmountScaler converts a monthly amount into another unit.
type AmountScaler interface {
	Scale(monthly decimal.Decimal) decimal.Decimal
}

type identityScaler struct{}

func (identityScaler) Scale(d decimal.Decimal) decimal.Decimal { return d }

type weeklyScaler struct{}

func (weeklyScaler) Scale(d decimal.Decimal) decimal.Decimal {
	return core.Round2(d.Div(weeksPerMonth))
}

var scalers = map[Unit]AmountScaler{
	UnitMonthly: identityScaler{},
	UnitWeekly:  weeklyScaler{},
}

// ScalerFor returns the scaler for a unit.
func ScalerFor(unit Unit) (AmountScaler, error) {
	s, ok := scalers[unit]
	if !ok {
		return nil, fmt.Errorf("unknown amount unit: %q", unit)
	}
	return s, nil
}

// IsValid reports whether the unit has a registered scaler.
func (u Unit) IsValid() bool {
	_, ok := scalers[u]
	return ok
}
