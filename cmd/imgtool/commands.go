package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-img/img/codec"
	"github.com/cwbudde/algo-img/img/conv"
	"github.com/cwbudde/algo-img/img/core"
	"github.com/cwbudde/algo-img/img/filter"
	"github.com/cwbudde/algo-img/img/raster"
	"github.com/cwbudde/algo-img/stats/histogram"
	"github.com/cwbudde/algo-img/stats/pixel"
)

// imageFlags registers the input options shared by every command that reads
// an image.
type imageFlags struct {
	width, height int
}

func (f *imageFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&f.width, "width", 0, "width of .raw inputs")
	fs.IntVar(&f.height, "height", 0, "height of .raw inputs")
}

func (f *imageFlags) load(path string) (*raster.Buffer, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: missing input file", errUsage)
	}
	return codec.Load(path, codec.WithRawSize(f.width, f.height))
}

func runFilter(args []string, stdout io.Writer) error {
	fs := newFlagSet("filter", os.Stderr)
	var img imageFlags
	img.register(fs)
	in := fs.String("in", "", "input image")
	out := fs.String("out", "", "output image")
	name := fs.String("name", "", "filter name (see 'imgtool list')")
	param := fs.Float64("param", math.NaN(), "filter parameter (sharpen amount, threshold level)")
	strategy := fs.String("strategy", "auto", "convolution strategy: auto, direct or fft")
	if err := fs.Parse(args); err != nil {
		return err
	}

	entry, ok := filter.Lookup(*name)
	if !ok {
		return fmt.Errorf("unknown filter %q (use 'imgtool list' to see available)", *name)
	}
	s, err := conv.ParseStrategy(*strategy)
	if err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("%w: missing -out", errUsage)
	}

	src, err := img.load(*in)
	if err != nil {
		return err
	}

	p := entry.DefaultParam
	if entry.HasParam && !math.IsNaN(*param) {
		p = *param
	}
	dst, err := entry.Apply(src, p, conv.WithStrategy(s))
	if err != nil {
		return fmt.Errorf("%s: %w", entry.Name, err)
	}
	if err := codec.Save(*out, dst, codec.WithComment("imgtool "+entry.Name)); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s: %s -> %s (%dx%d)\n", entry.Name, *in, *out, dst.Width(), dst.Height())
	return nil
}

func runStats(args []string, stdout io.Writer) error {
	fs := newFlagSet("stats", os.Stderr)
	var img imageFlags
	img.register(fs)
	in := fs.String("in", "", "input image")
	if err := fs.Parse(args); err != nil {
		return err
	}

	b, err := img.load(*in)
	if err != nil {
		return err
	}
	s, err := pixel.Calculate(b)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Size\t%dx%d\n", s.Width, s.Height)
	fmt.Fprintf(tw, "Sum\t%.6g\n", s.Sum)
	fmt.Fprintf(tw, "Mean\t%.6f\n", s.Mean)
	fmt.Fprintf(tw, "Variance\t%.6f\n", s.Variance)
	fmt.Fprintf(tw, "StdDev\t%.6f\n", s.StdDev)
	fmt.Fprintf(tw, "Min\t%g at (%d,%d)\n", s.Min, s.MinX, s.MinY)
	fmt.Fprintf(tw, "Max\t%g at (%d,%d)\n", s.Max, s.MaxX, s.MaxY)
	return tw.Flush()
}

func runHist(args []string, stdout io.Writer) error {
	fs := newFlagSet("hist", os.Stderr)
	var img imageFlags
	img.register(fs)
	in := fs.String("in", "", "input image")
	bins := fs.Int("bins", 256, "number of bins")
	out := fs.String("out", "", "write the histogram to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	b, err := img.load(*in)
	if err != nil {
		return err
	}

	if *out == "" {
		return histogram.WriteText(stdout, b, *bins)
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := histogram.WriteText(f, b, *bins); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func runCompare(args []string, stdout io.Writer) error {
	fs := newFlagSet("compare", os.Stderr)
	var img imageFlags
	img.register(fs)
	pathA := fs.String("a", "", "first image")
	pathB := fs.String("b", "", "second image")
	tol := fs.Float64("tol", 1e-2, "maximum |1-NCC| reported as SUCCESS")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := img.load(*pathA)
	if err != nil {
		return err
	}
	b, err := img.load(*pathB)
	if err != nil {
		return err
	}

	sae, err := pixel.SAE(a, b)
	if err != nil {
		return err
	}
	mae, err := pixel.MAE(a, b)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "SAE\t%g\n", sae)
	fmt.Fprintf(tw, "MAE\t%g\n", mae)

	// NCC is undefined for constant images; fall back to the mean error.
	ok := core.NearlyEqual(mae, 0, *tol)
	ncc, err := pixel.NCC(a, b)
	switch {
	case errors.Is(err, raster.ErrDegenerateInput):
		fmt.Fprintf(tw, "NCC\tundefined\n")
	case err != nil:
		return err
	default:
		fmt.Fprintf(tw, "NCC\t%.2f%%\n", ncc*100)
		ok = core.NearlyEqual(ncc, 1, *tol)
	}

	verdict := "FAILURE"
	if ok {
		verdict = "SUCCESS"
	}
	fmt.Fprintf(tw, "Result\t%s\n", verdict)
	return tw.Flush()
}

func runList(args []string, stdout io.Writer) error {
	fs := newFlagSet("list", os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	for _, name := range filter.Names() {
		e, _ := filter.Lookup(name)
		param := "-"
		if e.HasParam {
			param = fmt.Sprintf("%g", e.DefaultParam)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, param, e.Description)
	}
	return tw.Flush()
}
