// Package wavechart renders CDP signal traces as square-wave plots,
// either to image files or into an interactive viewer window.
package wavechart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/driftline/cdp/codec"
	"github.com/driftline/cdp/wave"
)

// WavePlot draws a signal trace as a square wave on the half-cell
// axis, with a dashed vertical rule at every bit-cell boundary.
type WavePlot struct {
	Levels    []codec.SignalLevel
	LineStyle draw.LineStyle
	CellStyle draw.LineStyle
}

var _ plot.Plotter = &WavePlot{}
var _ plot.DataRanger = &WavePlot{}

// NewWavePlot builds a WavePlot for an encoded stream.
func NewWavePlot(encoded []byte) *WavePlot {
	line := plotter.DefaultLineStyle
	line.Width = vg.Points(1.5)
	line.Color = color.RGBA{0, 96, 192, 255}

	cell := plotter.DefaultLineStyle
	cell.Width = vg.Points(0.5)
	cell.Color = color.RGBA{160, 160, 160, 255}
	cell.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}

	return &WavePlot{
		Levels:    wave.Trace(encoded),
		LineStyle: line,
		CellStyle: cell,
	}
}

func (w *WavePlot) Plot(c draw.Canvas, plt *plot.Plot) {
	if len(w.Levels) == 0 {
		return
	}
	trX, trY := plt.Transforms(&c)

	// bit-cell boundaries, two half-cells apart
	for x := 0; x <= len(w.Levels); x += 2 {
		pts := []vg.Point{
			{X: trX(float64(x)), Y: trY(-0.1)},
			{X: trX(float64(x)), Y: trY(1.1)},
		}
		c.StrokeLines(w.CellStyle, c.ClipLinesXY(pts)...)
	}

	// the wave itself: level i is held across [i, i+1]; repeating the
	// X at each step makes the vertical edges
	pts := make([]vg.Point, 0, len(w.Levels)*2)
	for i, level := range w.Levels {
		y := trY(float64(level))
		pts = append(pts,
			vg.Point{X: trX(float64(i)), Y: y},
			vg.Point{X: trX(float64(i + 1)), Y: y})
	}
	c.StrokeLines(w.LineStyle, c.ClipLinesXY(pts)...)
}

func (w *WavePlot) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmax = float64(len(w.Levels))
	if xmax == 0 {
		xmax = 1
	}
	return 0, xmax, -0.25, 1.25
}

// NewPlot assembles a complete labeled plot around a WavePlot.
func NewPlot(encoded []byte, title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Half-Bit Cells"
	p.Y.Label.Text = "Line Level"
	p.Y.Tick.Marker = levelTicks{}
	p.Add(NewWavePlot(encoded))
	return p
}

type levelTicks struct{}

func (levelTicks) Ticks(min, max float64) []plot.Tick {
	return []plot.Tick{
		{Value: 0, Label: "Low"},
		{Value: 1, Label: "High"},
	}
}
