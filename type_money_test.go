package dca

import (
	"encoding/json"
	"testing"
)

func TestMoneyArithmetic(t *testing.T) {
	a, b := USD(1000), USD(100)

	if got := a.Add(b); !got.Equal(USD(1100)) {
		t.Errorf("Add = %s, want $1,100.00", got)
	}
	if got := a.Sub(b); !got.Equal(USD(900)) {
		t.Errorf("Sub = %s, want $900.00", got)
	}

	// The zero Money has no currency and merges with any.
	var zero Money
	if got := zero.Add(b); got.Currency() != "USD" || !got.Equal(USD(100)) {
		t.Errorf("zero.Add = %s %s, want $100.00 USD", got, got.Currency())
	}
}

func TestMoneyDivPrice(t *testing.T) {
	// $1,100 at $100 a share buys exactly 11 shares, and the position marked
	// at the same price is worth the contribution again.
	amount, price := USD(1100), USD(100)

	shares := amount.DivPrice(price)
	if !shares.Equal(Q(11)) {
		t.Errorf("DivPrice = %s, want 11", shares)
	}
	if got := price.Mul(shares); !got.Equal(amount) {
		t.Errorf("Mul = %s, want %s", got, amount)
	}
}

func TestMoneySignedString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{USD(241.10), "+$241.10"},
		{USD(-12.50), "-$12.50"},
		{USD(0), "-"},
	}
	for _, tt := range tests {
		if got := tt.m.SignedString(); got != tt.want {
			t.Errorf("SignedString(%s) = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestPercentString(t *testing.T) {
	if got := Percent(18.546).String(); got != "18.55%" {
		t.Errorf("String() = %q, want 18.55%%", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want -", got)
	}
	if got := Percent(-3.2).SignedString(); got != "-3.20%" {
		t.Errorf("SignedString(-3.2) = %q, want -3.20%%", got)
	}
}

func TestMetricJSON(t *testing.T) {
	b, err := json.Marshal(UndefinedMetric())
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "null" {
		t.Errorf("undefined marshals to %s, want null", b)
	}

	b, err = json.Marshal(DefinedMetric(1.5))
	if err != nil {
		t.Fatal(err)
	}
	var m Metric
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if v, ok := m.Value(); !ok || v != 1.5 {
		t.Errorf("round trip = %s, want 1.50", m)
	}
}
