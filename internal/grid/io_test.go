package grid

import (
	"errors"
	"strings"
	"testing"
)

func TestFromText_TokenCount(t *testing.T) {
	if _, err := FromText("1 2 3"); err == nil {
		t.Fatal("expected InvalidInput for too few tokens")
	}
}

func TestFromText_OutOfRangeDigit(t *testing.T) {
	tokens := make([]string, 81)
	for i := range tokens {
		tokens[i] = "123456789"
	}
	tokens[40] = "0"
	text := strings.Join(tokens, " ")
	if _, err := FromText(text); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("FromText with a 0 digit: err = %v, want ErrInvalidInput", err)
	}
}

func TestFromText_StripsNonDigitPunctuation(t *testing.T) {
	var b []byte
	for i := 0; i < 81; i++ {
		b = append(b, []byte("123456789")...)
		b = append(b, ',', ' ')
	}
	g, err := FromText(string(b))
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if g.Cell(0, 0).Candidates().Count() != 9 {
		t.Error("expected every cell to start with all 9 candidates")
	}
}

func TestGrid_RoundTrip(t *testing.T) {
	g := Empty()
	text := g.String()
	reparsed, err := FromText(text)
	if err != nil {
		t.Fatalf("FromText(String()): %v", err)
	}
	if !g.Equal(reparsed) {
		t.Error("parse(print(g)) should equal g")
	}
	if !g.EqualsText(text) {
		t.Error("EqualsText should accept the grid's own rendering")
	}
}

func TestGrid_StringFormat(t *testing.T) {
	g := Empty()
	s := g.String()
	lines := 0
	for _, r := range s {
		if r == '\n' {
			lines++
		}
	}
	// 4 row dividers + 9 data rows, joined by 12 newlines.
	if lines != 12 {
		t.Errorf("expected 12 newlines in rendering, got %d", lines)
	}
	if s[:1] != "+" {
		t.Errorf("expected rendering to start with the row divisor, got %q", s[:1])
	}
}
