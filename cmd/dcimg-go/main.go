package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lightsheet/dcimg-go/dcimg"
	"github.com/lightsheet/dcimg-go/output"
)

func main() {
	config := parseFlags()

	if config.Input == "" {
		fmt.Fprintln(os.Stderr, "error: input file required")
		os.Exit(1)
	}

	if config.Output == "" && !config.DumpMeta && !config.Timestamps {
		fmt.Fprintln(os.Stderr, "error: output file (-o), -meta or -timestamps required")
		os.Exit(1)
	}

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() *output.Config {
	config := &output.Config{}

	flag.StringVar(&config.Output, "o", "", "output file path (.pgm or .tiff)")
	flag.IntVar(&config.Frame, "frame", 0, "frame index to export")
	flag.BoolVar(&config.Verbose, "v", false, "verbose output")
	flag.BoolVar(&config.DumpMeta, "meta", false, "dump header metadata to stdout")
	flag.BoolVar(&config.Timestamps, "timestamps", false, "dump per-frame timestamps to stdout")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "dcimg-go: Hamamatsu DCIMG stack reader\n\n")
		fmt.Fprintf(os.Stderr, "usage: dcimg-go [options] <input.dcimg>\n\n")
		fmt.Fprintf(os.Stderr, "options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\noutput formats:\n")
		fmt.Fprintf(os.Stderr, "  .pgm         - binary PGM, 8 or 16 bit\n")
		fmt.Fprintf(os.Stderr, "  .tiff, .tif  - uncompressed grayscale TIFF\n")
		fmt.Fprintf(os.Stderr, "\nexamples:\n")
		fmt.Fprintf(os.Stderr, "  dcimg-go -meta input.dcimg\n")
		fmt.Fprintf(os.Stderr, "  dcimg-go -frame 12 -o frame12.tiff input.dcimg\n")
	}

	flag.Parse()

	if flag.NArg() > 0 {
		config.Input = flag.Arg(0)
	}

	return config
}

func run(config *output.Config) error {
	logger := dcimg.NewLogger()

	logger.Step("open", filepath.Base(config.Input))
	file, err := dcimg.Open(config.Input)
	if err != nil {
		return fmt.Errorf("cannot open DCIMG file: %w", err)
	}
	defer file.Close()
	frames, rows, cols := file.Shape()
	logger.Done(fmt.Sprintf("%d frames of %dx%d, %d byte(s)/px",
		frames, cols, rows, file.ByteDepth()))

	if config.DumpMeta {
		return dumpMetadata(file)
	}
	if config.Timestamps {
		return dumpTimestamps(file)
	}

	if config.Frame < 0 || config.Frame >= frames {
		return fmt.Errorf("frame %d out of range, file has %d frames",
			config.Frame, frames)
	}

	logger.Step("read frame", config.Frame)
	stack, err := file.Frame(config.Frame)
	if err != nil {
		return err
	}
	logger.Done("ok")

	outputExt := strings.ToLower(filepath.Ext(config.Output))
	logger.Step("write", config.Output)
	switch outputExt {
	case ".pgm":
		err = output.ExportPGM(stack, 0, config.Output)
	case ".tiff", ".tif":
		err = output.ExportTIFF(stack, 0, config.Output)
	default:
		return fmt.Errorf("unsupported output format: %s", outputExt)
	}
	if err != nil {
		return err
	}
	logger.Done("ok")

	if config.Verbose {
		logger.Total()
	}
	return nil
}

func dumpTimestamps(file *dcimg.File) error {
	ts, err := file.Timestamps()
	if err != nil {
		return err
	}
	for i, t := range ts {
		fmt.Printf("%d\t%.6f\n", i, t)
	}
	return nil
}
