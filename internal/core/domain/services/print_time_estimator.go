package services

import (
	"math"
	"regexp"
	"strconv"
)

const (
	// MinPrintHours is returned for anything too small or too garbled to estimate.
	MinPrintHours = 0.1

	// MaxPrintHours bounds estimates for absurd dimension strings.
	MaxPrintHours = 5000.0

	// cubicCentimetresPerHour is the assumed deposition rate of a shop printer.
	cubicCentimetresPerHour = 10.0

	maxAxes = 3
)

var magnitudePattern = regexp.MustCompile(`[0-9]*\.?[0-9]+`)

// PrintTimeEstimator turns a free-text dimension string into print hours.
//
// Up to three numbers are read from the string; separators ("x", "*", spaces)
// and unit suffixes are ignored and every magnitude is taken as millimetres.
// Missing axes count as 1 mm. The bounding-box volume is the time proxy.
//
// Example:
//
//	est := NewPrintTimeEstimator()
//	est.EstimateHours("20x20x10mm", 3) // 4 cm³ per item -> 0.4h each -> 1.2h
type PrintTimeEstimator struct{}

func NewPrintTimeEstimator() PrintTimeEstimator {
	return PrintTimeEstimator{}
}

// EstimateHours never returns less than MinPrintHours or more than MaxPrintHours.
func (PrintTimeEstimator) EstimateHours(dimensions string, quantity int) float64 {
	if quantity <= 0 {
		return MinPrintHours
	}

	tokens := magnitudePattern.FindAllString(dimensions, maxAxes)
	if len(tokens) == 0 {
		return MinPrintHours
	}

	volumeMM3 := 1.0
	for _, token := range tokens {
		v, err := strconv.ParseFloat(token, 64)
		if err != nil || v <= 0 {
			return MinPrintHours
		}
		volumeMM3 *= v
	}

	hours := volumeMM3 / 1000.0 / cubicCentimetresPerHour * float64(quantity)
	switch {
	case math.IsNaN(hours), hours < MinPrintHours:
		return MinPrintHours
	case math.IsInf(hours, 0), hours > MaxPrintHours:
		return MaxPrintHours
	}

	return hours
}
