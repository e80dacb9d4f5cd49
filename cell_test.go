package kterm

import "testing"

func TestNewCell(t *testing.T) {
	c := NewCell('A', MakeAttribute(ColorWhite, ColorBlack))

	if c.Glyph() != 'A' {
		t.Errorf("expected glyph 'A', got %q", c.Glyph())
	}
	if fg := c.Attr().Foreground(); fg != ColorWhite {
		t.Errorf("expected foreground white, got %v", fg)
	}
	if bg := c.Attr().Background(); bg != ColorBlack {
		t.Errorf("expected background black, got %v", bg)
	}
}

func TestCellRoundTrip(t *testing.T) {
	for glyph := byte(0); glyph < 255; glyph += 17 {
		for attr := 0; attr < 256; attr += 23 {
			c := NewCell(glyph, Attribute(attr))
			if c.Glyph() != glyph {
				t.Fatalf("glyph round-trip failed: got %d want %d", c.Glyph(), glyph)
			}
			if c.Attr() != Attribute(attr) {
				t.Fatalf("attr round-trip failed: got %d want %d", c.Attr(), attr)
			}
		}
	}
}

func TestBlankCell(t *testing.T) {
	attr := MakeAttribute(ColorGreen, ColorBlue)
	c := blankCell(attr)

	if c.Glyph() != ' ' {
		t.Errorf("expected space glyph, got %q", c.Glyph())
	}
	if c.Attr() != attr {
		t.Errorf("expected attr %v, got %v", attr, c.Attr())
	}
}
