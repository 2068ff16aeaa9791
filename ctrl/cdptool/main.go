// cdptool encodes and decodes Conditional DePhase (Differential
// Manchester) streams. It reads stdin and writes stdout by default and
// understands raw bytes, hex text, and binary text on either side.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/driftline/cdp/codec"
	"github.com/driftline/cdp/util"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var decode bool
	var inFormat, outFormat string
	var inPath, outPath string

	flags := pflag.NewFlagSet("cdptool", pflag.ContinueOnError)
	flags.BoolVarP(&decode, "decode", "d", false, "decode instead of encode")
	flags.StringVar(&inFormat, "from", "raw", "input format: raw, hex, or bits")
	flags.StringVar(&outFormat, "to", "raw", "output format: raw, hex, or bits")
	flags.StringVar(&inPath, "in", "", "input file (default: stdin)")
	flags.StringVar(&outPath, "out", "", "output file (default: stdout)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", flags.Arg(0))
	}

	input, err := readInput(inPath, inFormat)
	if err != nil {
		return err
	}

	var output []byte
	if decode {
		output, err = codec.DecodeBytes(input)
		if err != nil {
			return err
		}
	} else {
		output = codec.EncodeBytes(input)
	}

	return writeOutput(outPath, outFormat, output)
}

func parseText(format string, raw []byte) ([]byte, error) {
	switch format {
	case "raw":
		return raw, nil
	case "hex":
		return hex.DecodeString(strings.Join(strings.Fields(string(raw)), ""))
	case "bits":
		return util.ParseBits(string(raw))
	default:
		return nil, fmt.Errorf("unknown format %q (want raw, hex, or bits)", format)
	}
}

func formatText(format string, data []byte) ([]byte, error) {
	switch format {
	case "raw":
		return data, nil
	case "hex":
		return []byte(hex.EncodeToString(data) + "\n"), nil
	case "bits":
		return []byte(util.StringBits(data) + "\n"), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want raw, hex, or bits)", format)
	}
}

func readInput(path, format string) ([]byte, error) {
	var raw []byte
	var err error
	if path == "" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return parseText(format, raw)
}

func writeOutput(path, format string, data []byte) error {
	out, err := formatText(format, data)
	if err != nil {
		return err
	}
	if path == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(path, out, 0644)
}
