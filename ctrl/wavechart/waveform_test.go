package wavechart

import (
	"testing"

	"github.com/driftline/cdp/codec"
)

func TestWavePlotRange(t *testing.T) {
	enc := codec.EncodeBytes([]byte{0x74, 0xE5})
	w := NewWavePlot(enc)
	if len(w.Levels) != 32 {
		t.Fatalf("trace has %d half-cells; want 32", len(w.Levels))
	}
	xmin, xmax, ymin, ymax := w.DataRange()
	if xmin != 0 || xmax != 32 {
		t.Errorf("x range [%v, %v]; want [0, 32]", xmin, xmax)
	}
	if ymin >= 0 || ymax <= 1 {
		t.Errorf("y range [%v, %v] does not pad the levels", ymin, ymax)
	}
}

func TestWavePlotEmpty(t *testing.T) {
	w := NewWavePlot(nil)
	_, xmax, _, _ := w.DataRange()
	if xmax <= 0 {
		t.Errorf("empty trace must still have a nonzero x range, got %v", xmax)
	}
}

func TestNewPlotAxes(t *testing.T) {
	p := NewPlot(codec.EncodeBytes([]byte{0xFF}), "test")
	if p.X.Max != 16 {
		t.Errorf("plot x max %v; want 16", p.X.Max)
	}
	ticks := levelTicks{}.Ticks(p.Y.Min, p.Y.Max)
	if len(ticks) != 2 || ticks[0].Label != "Low" || ticks[1].Label != "High" {
		t.Errorf("unexpected level ticks: %v", ticks)
	}
}
