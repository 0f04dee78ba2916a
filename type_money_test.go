package carteira

import "testing"

func TestMoney_Arithmetic(t *testing.T) {
	if got := M(28).Mul(Q(100)); !got.Equal(M(2800)) {
		t.Errorf("28 × 100 = %s, want 2800", got.Decimal())
	}
	if got := M(2800).Div(Q(100)); !got.Equal(M(28)) {
		t.Errorf("2800 / 100 = %s, want 28", got.Decimal())
	}
	if got := M(3000).Sub(M(2800)); !got.Equal(M(200)) {
		t.Errorf("3000 - 2800 = %s, want 200", got.Decimal())
	}
}

func TestMoney_FractionalExact(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3.
	if got := M(0.1).Add(M(0.2)); !got.Equal(M(0.3)) {
		t.Errorf("0.1 + 0.2 = %s, want exactly 0.3", got.Decimal())
	}
	// Crypto-scale precision survives multiplication.
	if got := M(350000).Mul(Q(0.00000001)); !got.Equal(M(0.0035)) {
		t.Errorf("350000 × 1e-8 = %s, want 0.0035", got.Decimal())
	}
}

func TestMoney_Ratio(t *testing.T) {
	got := M(200).Ratio(M(2800))
	if !got.Equal(Percent(7.1429)) {
		t.Errorf("Ratio = %v, want ≈7.14%%", got)
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := M(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want \"-\"", got)
	}
	if got := M(10).SignedString(); got[0] != '+' {
		t.Errorf("SignedString(10) = %q, want a leading +", got)
	}
}

func TestPercent_SignedString(t *testing.T) {
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want \"-\"", got)
	}
	if got := Percent(7.14).SignedString(); got != "+7.14%" {
		t.Errorf("SignedString(7.14) = %q, want \"+7.14%%\"", got)
	}
	if got := Percent(-10.71).SignedString(); got != "-10.71%" {
		t.Errorf("SignedString(-10.71) = %q, want \"-10.71%%\"", got)
	}
}
