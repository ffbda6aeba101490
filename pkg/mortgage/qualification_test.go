package mortgage

import (
	"math"
	"testing"
)

func TestMinimumDownPayment(t *testing.T) {
	tests := []struct {
		name          string
		purchasePrice float64
		foreignBuyer  bool
		expected      float64
	}{
		{
			name:          "Below first tier",
			purchasePrice: 400000,
			expected:      20000, // 5%
		},
		{
			name:          "Exactly at first tier",
			purchasePrice: 500000,
			expected:      25000, // 5%
		},
		{
			name:          "Between tiers",
			purchasePrice: 600000,
			expected:      35000, // 25000 + 10% of 100000
		},
		{
			name:          "Just below second tier",
			purchasePrice: 999999,
			expected:      25000 + 499999*0.10,
		},
		{
			name:          "At second tier",
			purchasePrice: 1000000,
			expected:      200000, // flat 20%
		},
		{
			name:          "Above second tier",
			purchasePrice: 1500000,
			expected:      300000,
		},
		{
			name:          "Foreign buyer",
			purchasePrice: 600000,
			foreignBuyer:  true,
			expected:      210000, // flat 35%
		},
		{
			name:          "Zero price",
			purchasePrice: 0,
			expected:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MinimumDownPayment(tt.purchasePrice, tt.foreignBuyer)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("MinimumDownPayment() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}

func TestInsurancePremium(t *testing.T) {
	tests := []struct {
		name          string
		purchasePrice float64
		downPayment   float64
		expected      float64
	}{
		{
			name:          "Twenty percent down has no insurance",
			purchasePrice: 500000,
			downPayment:   100000,
			expected:      0,
		},
		{
			name:          "Ten percent down uses 3.1 percent rate",
			purchasePrice: 500000,
			downPayment:   50000,
			expected:      13950, // 3.1% of 450000
		},
		{
			name:          "Five percent down uses 4.0 percent rate",
			purchasePrice: 400000,
			downPayment:   20000,
			expected:      15200, // 4.0% of 380000
		},
		{
			name:          "Fifteen percent down uses 2.8 percent rate",
			purchasePrice: 400000,
			downPayment:   60000,
			expected:      9520, // 2.8% of 340000
		},
		{
			name:          "Nineteen percent down uses 2.4 percent rate",
			purchasePrice: 400000,
			downPayment:   76000,
			expected:      7776, // 2.4% of 324000
		},
		{
			name:          "Zero purchase price",
			purchasePrice: 0,
			downPayment:   0,
			expected:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := InsurancePremium(tt.purchasePrice, tt.downPayment)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("InsurancePremium() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}

func TestQualify(t *testing.T) {
	t.Run("Under-funded down payment is raised to the minimum", func(t *testing.T) {
		q := Qualify(600000, 10000, DownPaymentAmount, false)
		if math.Abs(q.ActualDownPayment-35000) > 0.01 {
			t.Errorf("ActualDownPayment = %.2f, expected 35000", q.ActualDownPayment)
		}
	})

	t.Run("Percent mode converts against purchase price", func(t *testing.T) {
		q := Qualify(500000, 20, DownPaymentPercent, false)
		if math.Abs(q.ActualDownPayment-100000) > 0.01 {
			t.Errorf("ActualDownPayment = %.2f, expected 100000", q.ActualDownPayment)
		}
		if q.MortgageInsurance != 0 {
			t.Errorf("MortgageInsurance = %.2f, expected 0 at 20%% down", q.MortgageInsurance)
		}
	})

	t.Run("Insurance is added to principal", func(t *testing.T) {
		q := Qualify(500000, 50000, DownPaymentAmount, false)
		expectedPrincipal := 450000 + 13950.0
		if math.Abs(q.TotalMortgagePrincipal-expectedPrincipal) > 0.01 {
			t.Errorf("TotalMortgagePrincipal = %.2f, expected %.2f", q.TotalMortgagePrincipal, expectedPrincipal)
		}
	})

	t.Run("Foreign buyer minimum", func(t *testing.T) {
		q := Qualify(800000, 100000, DownPaymentAmount, true)
		if math.Abs(q.ActualDownPayment-280000) > 0.01 {
			t.Errorf("ActualDownPayment = %.2f, expected 280000", q.ActualDownPayment)
		}
		if q.MortgageInsurance != 0 {
			t.Errorf("MortgageInsurance = %.2f, expected 0 at 35%% down", q.MortgageInsurance)
		}
	})

	t.Run("Zero purchase price does not divide by zero", func(t *testing.T) {
		q := Qualify(0, 0, DownPaymentAmount, false)
		if q.ActualDownPaymentPercent != 0 {
			t.Errorf("ActualDownPaymentPercent = %.2f, expected 0", q.ActualDownPaymentPercent)
		}
		if q.TotalMortgagePrincipal != 0 {
			t.Errorf("TotalMortgagePrincipal = %.2f, expected 0", q.TotalMortgagePrincipal)
		}
	})
}
