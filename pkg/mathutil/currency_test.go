package mathutil

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{1.234, 1.23},
		{1.236, 1.24},
		{-1.236, -1.24},
		{0, 0},
		{999999.999, 1000000.00},
	}

	for _, tt := range tests {
		if got := Round(tt.input); got != tt.expected {
			t.Errorf("Round(%v) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0.005) {
		t.Error("IsZero(0.005) should be true within currency tolerance")
	}
	if IsZero(0.02) {
		t.Error("IsZero(0.02) should be false")
	}
}

func TestMinMax(t *testing.T) {
	if Min(1, 2) != 1 || Min(2, 1) != 1 {
		t.Error("Min returned wrong value")
	}
	if Max(1, 2) != 2 || Max(2, 1) != 2 {
		t.Error("Max returned wrong value")
	}
}

func TestCalculatePercentage(t *testing.T) {
	if got := CalculatePercentage(50, 200); got != 25 {
		t.Errorf("CalculatePercentage(50, 200) = %v, expected 25", got)
	}
	if got := CalculatePercentage(50, 0); got != 0 {
		t.Errorf("CalculatePercentage(50, 0) = %v, expected 0 for zero total", got)
	}
}

func TestApplyPercentage(t *testing.T) {
	if got := ApplyPercentage(500000, 5); got != 25000 {
		t.Errorf("ApplyPercentage(500000, 5) = %v, expected 25000", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, low, high, expected float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.low, tt.high); got != tt.expected {
			t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tt.val, tt.low, tt.high, got, tt.expected)
		}
	}
}
