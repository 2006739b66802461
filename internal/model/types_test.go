package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTradeQualifies(t *testing.T) {
	threshold := decimal.NewFromInt(750)

	tests := []struct {
		name string
		cost decimal.Decimal
		want bool
	}{
		{"well above threshold", decimal.NewFromInt(5000), true},
		{"exactly at threshold", decimal.NewFromInt(750), true},
		{"just below threshold", decimal.RequireFromString("749.99"), false},
		{"small trade", decimal.NewFromInt(10), false},
		{"zero cost", decimal.Zero, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Trade{Cost: tt.cost}
			if got := tr.Qualifies(threshold); got != tt.want {
				t.Errorf("Qualifies(%s) = %v, want %v", tt.cost, got, tt.want)
			}
		})
	}
}

func TestTradeQualifies_ExactProduct(t *testing.T) {
	// 0.75 * 1000 = 750 must qualify exactly; decimal arithmetic keeps
	// the product representable where float64 might not.
	price := decimal.RequireFromString("0.75")
	size := decimal.NewFromInt(1000)

	tr := Trade{Cost: price.Mul(size)}
	if !tr.Qualifies(decimal.NewFromInt(750)) {
		t.Errorf("cost %s should qualify at threshold 750", tr.Cost)
	}
}
