// Package tools holds the pit lane calculators offered on the tools page.
package tools

import (
	"errors"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("invalid calculator input")

var pi = decimal.NewFromFloat(math.Pi)

// GearRatio computes the final drive ratio of a spur/pinion combination.
// internal is the transmission's internal ratio (1 for direct drive).
func GearRatio(spurTeeth, pinionTeeth int, internal decimal.Decimal) (
	decimal.Decimal, error,
) {
	if spurTeeth <= 0 || pinionTeeth <= 0 || internal.Sign() <= 0 {
		return decimal.Zero, ErrInvalidInput
	}
	spur := decimal.NewFromInt(int64(spurTeeth))
	pinion := decimal.NewFromInt(int64(pinionTeeth))
	return spur.Div(pinion).Mul(internal), nil
}

// Rollout computes the distance in mm the car travels per motor
// revolution for a given tire diameter (mm) and gearing.
func Rollout(tireDiameterMM decimal.Decimal, spurTeeth, pinionTeeth int,
	internal decimal.Decimal,
) (decimal.Decimal, error) {
	if tireDiameterMM.Sign() <= 0 {
		return decimal.Zero, ErrInvalidInput
	}
	ratio, err := GearRatio(spurTeeth, pinionTeeth, internal)
	if err != nil {
		return decimal.Zero, err
	}
	circumference := tireDiameterMM.Mul(pi)
	return circumference.Div(ratio), nil
}

// RacePace estimates how many full laps fit into a race of the given
// length at the given average lap time, plus the time left over.
func RacePace(raceLen time.Duration, avgLap time.Duration) (
	laps int, remainder time.Duration, err error,
) {
	if raceLen <= 0 || avgLap <= 0 {
		return 0, 0, ErrInvalidInput
	}
	laps = int(raceLen / avgLap)
	remainder = raceLen - time.Duration(laps)*avgLap
	return laps, remainder, nil
}
