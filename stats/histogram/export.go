package histogram

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-img/img/raster"
)

// Header is the first line written by WriteText.
const Header = `"Min bin value" "Count"`

// WriteText writes the histogram of b as a two-column text table: the
// header line, then one "<lower edge> <count>" line per bin.
func WriteText(w io.Writer, b *raster.Buffer, binCount int) error {
	l, err := NewLayout(b, binCount)
	if err != nil {
		return err
	}
	bins, err := Compute(b, binCount)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, Header)
	for j, c := range bins {
		fmt.Fprintf(bw, "%s %d\n", strconv.FormatFloat(l.Edge(j), 'g', -1, 64), c)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("histogram: write: %w", err)
	}
	return nil
}
