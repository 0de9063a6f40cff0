package services_test

import (
	"testing"

	"printshop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestPrintTimeEstimator_EstimateHours(t *testing.T) {
	est := services.NewPrintTimeEstimator()

	testCases := []struct {
		name       string
		dimensions string
		quantity   int
		want       float64
	}{
		{"three axes with unit", "20x20x10mm", 3, 1.2},
		{"spaces and star separators", "100 * 50 * 20", 1, 10},
		{"decimals", "12.5x40x20mm", 2, 2},
		{"two axes", "100x100", 1, 1},
		{"extra tokens are ignored", "100x100x10x999", 1, 10},
		{"tiny part hits floor", "1x1x1mm", 1, services.MinPrintHours},
		{"empty string", "", 5, services.MinPrintHours},
		{"garbage", "about fist sized", 5, services.MinPrintHours},
		{"zero axis", "0x10x10", 5, services.MinPrintHours},
		{"zero quantity", "100x100x100", 0, services.MinPrintHours},
		{"negative quantity", "100x100x100", -4, services.MinPrintHours},
		{"huge input is capped", "99999x99999x99999", 1000, services.MaxPrintHours},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := est.EstimateHours(tc.dimensions, tc.quantity)

			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestPrintTimeEstimator_Bounds(t *testing.T) {
	est := services.NewPrintTimeEstimator()
	inputs := []string{"", "x", "mm", "...", "-5x-5x-5", "1e9", "0.0001x0.0001x0.0001", "200x200x200mm", "½x¼"}

	for _, dims := range inputs {
		for _, q := range []int{-1, 0, 1, 10, 100} {
			got := est.EstimateHours(dims, q)

			assert.GreaterOrEqual(t, got, services.MinPrintHours, "%q x%d", dims, q)
			assert.Less(t, got, 10000.0, "%q x%d", dims, q)
		}
	}
}
