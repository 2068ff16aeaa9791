// waveplot renders the line waveform of a CDP-encoded stream, either
// to an image file or into an interactive viewer window. Input is raw
// data to encode unless --encoded says it is already on-wire form.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gonum.org/v1/plot/vg"

	"github.com/driftline/cdp/codec"
	"github.com/driftline/cdp/ctrl/wavechart"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var inPath, outPath, title string
	var encoded, display bool
	var width, height float64

	flags := pflag.NewFlagSet("waveplot", pflag.ContinueOnError)
	flags.StringVar(&inPath, "in", "", "input file (default: stdin)")
	flags.StringVar(&outPath, "out", "waveform.png", "output image (format from extension)")
	flags.StringVar(&title, "title", "CDP Line Waveform", "plot title")
	flags.BoolVar(&encoded, "encoded", false, "input is already CDP-encoded")
	flags.BoolVar(&display, "display", false, "open an interactive viewer instead of writing a file")
	flags.Float64Var(&width, "width", 40, "image width in centimeters")
	flags.Float64Var(&height, "height", 10, "image height in centimeters")
	if err := flags.Parse(args); err != nil {
		return err
	}

	var data []byte
	var err error
	if inPath == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(inPath)
	}
	if err != nil {
		return err
	}

	stream := data
	if !encoded {
		stream = codec.EncodeBytes(data)
	} else if _, err := codec.DecodedLen(len(stream)); err != nil {
		return err
	}

	p := wavechart.NewPlot(stream, title)
	if display {
		return wavechart.DisplayPlotExportable(p, ".")
	}
	return wavechart.SavePlot(p, vg.Length(width)*vg.Centimeter, vg.Length(height)*vg.Centimeter, outPath)
}
