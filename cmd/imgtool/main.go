// Command imgtool filters, inspects and compares greyscale images.
//
// Usage:
//
//	imgtool <command> [flags]
//
// Commands:
//
//	filter   apply a named 3x3 filter and save the result
//	stats    print sum, mean, variance and extrema of an image
//	hist     print or save a histogram
//	compare  print SAE, MAE and NCC between two images
//	list     list available filter names
//
// Images are read and written by extension: .pgm, .raw, .txt, .ascii,
// .png, .bmp, .tif and .tiff.
//
// Examples:
//
//	imgtool filter -in lena.pgm -out edges.pgm -name sobel
//	imgtool filter -in lena.pgm -out sharp.png -name sharpen -param 0.5
//	imgtool hist -in lena.pgm -bins 16
//	imgtool compare -a mine.txt -b reference.txt
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

type command struct {
	name  string
	brief string
	run   func(args []string, stdout io.Writer) error
}

var commands = []command{
	{"filter", "apply a named 3x3 filter and save the result", runFilter},
	{"stats", "print sum, mean, variance and extrema of an image", runStats},
	{"hist", "print or save a histogram", runHist},
	{"compare", "print SAE, MAE and NCC between two images", runCompare},
	{"list", "list available filter names", runList},
}

var errUsage = errors.New("usage")

func main() {
	log.SetFlags(0)
	log.SetPrefix("imgtool: ")

	err := run(os.Args[1:], os.Stdout)
	switch {
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		usage(os.Stderr)
		os.Exit(2)
	case err != nil:
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	name := args[0]
	if name == "-h" || name == "-help" || name == "help" {
		usage(stdout)
		return nil
	}
	for _, c := range commands {
		if c.name == name {
			return c.run(args[1:], stdout)
		}
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, name)
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: imgtool <command> [flags]\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.brief)
	}
	fmt.Fprintf(w, "\nRun 'imgtool <command> -h' for command flags.\n")
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("imgtool "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}
