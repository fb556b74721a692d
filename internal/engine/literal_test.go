package engine

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, l := range []int{1, -1, 2, -2, 17, -17, 1000, -1000} {
		code, err := Encode(l)
		if err != nil {
			t.Fatalf("Encode(%d): %v", l, err)
		}
		if got := Decode(code); got != l {
			t.Errorf("Decode(Encode(%d)) = %d, want %d", l, got, l)
		}
	}
}

func TestComplementMatchesNegation(t *testing.T) {
	for _, l := range []int{1, -1, 2, -2, 42} {
		code, err := Encode(l)
		if err != nil {
			t.Fatalf("Encode(%d): %v", l, err)
		}
		negCode, err := Encode(-l)
		if err != nil {
			t.Fatalf("Encode(%d): %v", l, err)
		}
		if code.Complement() != negCode {
			t.Errorf("Encode(%d).Complement() = %v, want Encode(%d) = %v", l, code.Complement(), -l, negCode)
		}
		if code.Complement().Complement() != code {
			t.Errorf("complement is not involutive for %d", l)
		}
	}
}

func TestEncodeRejectsZero(t *testing.T) {
	if _, err := Encode(0); err == nil {
		t.Error("Encode(0) should fail")
	}
}

func TestEncodeRejectsOutOfRange(t *testing.T) {
	if _, err := Encode(maxVarMagnitude + 1); err == nil {
		t.Error("Encode should reject a variable beyond the supported magnitude")
	}
}

func TestVarAndPolarity(t *testing.T) {
	pos, _ := Encode(5)
	neg, _ := Encode(-5)
	if pos.Var() != 4 || neg.Var() != 4 {
		t.Errorf("Var() mismatch: pos=%d neg=%d, want 4", pos.Var(), neg.Var())
	}
	if pos.Polarity() != 0 {
		t.Errorf("positive literal should have polarity 0, got %d", pos.Polarity())
	}
	if neg.Polarity() != 1 {
		t.Errorf("negative literal should have polarity 1, got %d", neg.Polarity())
	}
}
