package wavechart

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"path"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// viewWindow is a zoom window over the trace, as fractions of the full
// half-cell range.
type viewWindow struct {
	Start, End float64
}

// PlotWidget displays a waveform plot and lets the user zoom into a
// stretch of the trace by dragging across the slider strip at the top.
// A right click resets the zoom.
type PlotWidget struct {
	Plot       *plot.Plot
	XMin, XMax float64 // full data range of the trace
	DPI        int
	ExportDir  string
	AdjWidth   vg.Length
	AdjHeight  vg.Length

	Window viewWindow // committed zoom
	Shown  viewWindow // zoom the current image was rendered with

	DragStart, DragEnd float64 // in-progress selection, -1 when idle

	Busy  bool
	Ready chan image.Image
	Image image.Image
}

func (p *PlotWidget) GenImage(w, h vg.Length) image.Image {
	p.Plot.X.Min = p.XMin + (p.XMax-p.XMin)*p.Window.Start
	p.Plot.X.Max = p.XMin + (p.XMax-p.XMin)*p.Window.End
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(p.DPI))
	p.Plot.Draw(draw.New(c))
	return c.Image()
}

func (p *PlotWidget) OnReady(ready image.Image) {
	if !p.Busy {
		panic("should be busy")
	}
	p.Image = ready
	p.Busy = false
}

func (p *PlotWidget) GetImage(size image.Point) image.Image {
	wAdjusted := vg.Points(float64(size.X) * vg.Inch.Points() / float64(p.DPI))
	hAdjusted := vg.Points(float64(size.Y) * vg.Inch.Points() / float64(p.DPI))
	if p.Image == nil {
		p.Image = p.GenImage(wAdjusted, hAdjusted)
		p.AdjWidth = wAdjusted
		p.AdjHeight = hAdjusted
		p.Shown = p.Window
	} else if p.AdjWidth != wAdjusted || p.AdjHeight != hAdjusted || p.Shown != p.Window {
		if !p.Busy {
			p.Busy = true
			go func() {
				p.Ready <- p.GenImage(wAdjusted, hAdjusted)
			}()
			p.AdjWidth = wAdjusted
			p.AdjHeight = hAdjusted
			p.Shown = p.Window
		}
	}

	return p.Image
}

// commit applies an in-progress drag selection as the new zoom window,
// mapped through the window currently shown.
func (p *PlotWidget) commit() {
	start, end := p.DragStart, p.DragEnd
	if end < start {
		start, end = end, start
	}
	span := p.Window.End - p.Window.Start
	start = p.Window.Start + span*start
	end = p.Window.Start + span*end
	if end-start >= 0.0001 {
		p.Window = viewWindow{Start: start, End: end}
	}
}

var layoutTag = new(struct{})

func (p *PlotWidget) Layout(gtx layout.Context) layout.Dimensions {
	defer op.Save(gtx.Ops).Load()

	sliderY := 20
	if sliderY > gtx.Constraints.Max.Y/4 {
		sliderY = gtx.Constraints.Max.Y / 4
	}

	base := op.Save(gtx.Ops)

	// input for the zoom slider
	for _, ev := range gtx.Queue.Events(layoutTag) {
		if x, ok := ev.(pointer.Event); ok {
			frac := math.Max(0, math.Min(1, float64(x.Position.X)/float64(gtx.Constraints.Max.X)))
			switch x.Type {
			case pointer.Press:
				if x.Buttons.Contain(pointer.ButtonSecondary) {
					p.DragStart = -1
					p.DragEnd = -1
					p.Window = viewWindow{Start: 0, End: 1}
				} else {
					p.DragStart = frac
					p.DragEnd = -1
				}
			case pointer.Drag:
				if !x.Buttons.Contain(pointer.ButtonSecondary) {
					p.DragEnd = frac
				}
			case pointer.Release:
				if !x.Buttons.Contain(pointer.ButtonSecondary) {
					if p.DragEnd != -1 {
						p.commit()
					}
					p.DragStart = -1
					p.DragEnd = -1
				}
			}
		}
	}

	pointer.Rect(image.Rectangle{
		Max: image.Point{
			X: gtx.Constraints.Max.X,
			Y: sliderY,
		},
	}).Add(gtx.Ops)
	pointer.InputOp{
		Tag:   layoutTag,
		Types: pointer.Press | pointer.Drag | pointer.Release,
	}.Add(gtx.Ops)

	// slider background: the full extent of the trace
	clip.Rect{
		Max: image.Point{
			X: gtx.Constraints.Max.X,
			Y: sliderY,
		},
	}.Add(gtx.Ops)
	paint.ColorOp{
		Color: color.NRGBA{192, 192, 192, 255},
	}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)

	base.Load()

	// the committed zoom window
	clip.Rect{
		Min: image.Point{
			X: int(float64(gtx.Constraints.Max.X) * p.Window.Start),
			Y: 0,
		},
		Max: image.Point{
			X: int(float64(gtx.Constraints.Max.X) * p.Window.End),
			Y: sliderY,
		},
	}.Add(gtx.Ops)
	paint.ColorOp{
		Color: color.NRGBA{128, 128, 128, 255},
	}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)

	if p.DragStart != -1 {
		base.Load()
		// the selection being dragged out
		start := p.DragStart
		end := p.DragEnd
		if end == -1 {
			end = math.Min(1, start+0.05)
			start = math.Max(0, start-0.05)
		}
		if end < start {
			start, end = end, start
		}
		clip.Rect{
			Min: image.Point{
				X: int(float64(gtx.Constraints.Max.X) * start),
				Y: 0,
			},
			Max: image.Point{
				X: int(float64(gtx.Constraints.Max.X) * end),
				Y: sliderY,
			},
		}.Add(gtx.Ops)
		paint.ColorOp{
			Color: color.NRGBA{192, 128, 128, 255},
		}.Add(gtx.Ops)
		paint.PaintOp{}.Add(gtx.Ops)
	}

	base.Load()

	op.Offset(f32.Point{Y: float32(sliderY * 2)}).Add(gtx.Ops)

	// the waveform image itself
	clip.Rect{
		Max: image.Point{
			X: gtx.Constraints.Max.X,
			Y: gtx.Constraints.Max.Y - sliderY*2,
		},
	}.Add(gtx.Ops)
	paint.NewImageOp(p.GetImage(image.Point{
		X: gtx.Constraints.Max.X,
		Y: gtx.Constraints.Max.Y - sliderY*2,
	})).Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)

	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func (p *PlotWidget) Export() {
	if p.ExportDir != "" {
		filepath := path.Join(p.ExportDir, "waveform.png")
		f, err := os.Create(filepath)
		if err != nil {
			log.Fatal(err)
		}
		err = png.Encode(f, p.Image)
		if err != nil {
			log.Fatal(err)
		}
		err = f.Close()
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Waveform exported to %s", filepath)
	}
}

// DisplayPlot opens an interactive window for a waveform plot. Drag
// across the strip at the top to zoom, right-click to reset, E to
// export a PNG, Q or Escape to quit.
func DisplayPlot(p *plot.Plot) error {
	return DisplayPlotExportable(p, "")
}

func DisplayPlotExportable(p *plot.Plot, exportDir string) error {
	plotWidget := &PlotWidget{
		Plot:      p,
		XMin:      p.X.Min,
		XMax:      p.X.Max,
		DPI:       128,
		ExportDir: exportDir,
		Ready:     make(chan image.Image),
		Window:    viewWindow{Start: 0, End: 1},
		DragStart: -1,
		DragEnd:   -1,
	}

	go func() {
		win := app.NewWindow(
			app.Title("CDP Waveform"),
			app.Size(
				unit.Px(1024),
				unit.Px(768),
			),
		)
		defer win.Close()

		for {
			select {
			case ready := <-plotWidget.Ready:
				plotWidget.OnReady(ready)
				win.Invalidate()
			case e := <-win.Events():
				switch e := e.(type) {
				case system.FrameEvent:
					ops := new(op.Ops)
					gtx := layout.NewContext(ops, e)
					layout.UniformInset(unit.Dp(30)).Layout(gtx, plotWidget.Layout)
					e.Frame(ops)
				case key.Event:
					switch e.Name {
					case "Q", key.NameEscape:
						win.Close()
					case "E":
						if e.State == key.Press {
							plotWidget.Export()
						}
					}
				case system.DestroyEvent:
					os.Exit(0)
				}
			}
		}
	}()

	app.Main()
	return nil
}
