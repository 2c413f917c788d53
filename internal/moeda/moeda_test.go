package moeda

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	casos := []struct {
		entrada string
		quer    float64
	}{
		{"R$ 1.234,56", 1234.56},
		{"R$ 66", 66},
		{"R$ 5.000,00", 5000},
		{"R$ 4.500,00", 4500},
		{"1234,5", 1234.5},
		{"1.000.000,99", 1000000.99},
		{"", 0},
		{"sem valor", 0},
	}
	for _, c := range casos {
		if got := Parse(c.entrada); math.Abs(got-c.quer) > 1e-9 {
			t.Errorf("Parse(%q) = %v, esperava %v", c.entrada, got, c.quer)
		}
	}
}

func TestFormat(t *testing.T) {
	casos := []struct {
		entrada float64
		quer    string
	}{
		{5000, "R$ 5.000,00"},
		{1234.56, "R$ 1.234,56"},
		{66, "R$ 66,00"},
	}
	for _, c := range casos {
		if got := Format(c.entrada); got != c.quer {
			t.Errorf("Format(%v) = %q, esperava %q", c.entrada, got, c.quer)
		}
	}
}

// Parse(Format(x)) == x para valores representativos.
func TestRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 66, 1234.56, 5000, 4500, 987654.32} {
		if got := Parse(Format(v)); math.Abs(got-v) > 1e-9 {
			t.Errorf("Parse(Format(%v)) = %v", v, got)
		}
	}
}
