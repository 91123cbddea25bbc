// Package report renders packing results for console output. It reads
// bins without modifying them.
package report

import (
	"fmt"
	"io"

	"github.com/eugenenazirov/bin-allocator/internal/packer"
)

// Write renders a packing summary: a titled header, the number of bins
// the solution required, and one line per bin.
func Write(w io.Writer, title string, bins []*packer.Bin) {
	fmt.Fprintln(w, "==========================[ results ]===========================")
	fmt.Fprintln(w, title)
	fmt.Fprintf(w, "Packing solution requires %d bin containers\n", len(bins))
	fmt.Fprintln(w, "++++[ container results ]++++")
	for _, bin := range bins {
		fmt.Fprintln(w, bin)
	}
	fmt.Fprintln(w, "===============================================================")
}

// WriteResult renders the summary plus placement totals, flagging any
// portion of the input that was dropped.
func WriteResult(w io.Writer, title string, result packer.Result) {
	Write(w, title, result.Bins)
	fmt.Fprintf(w, "Placed %d of %d total units", result.TotalPlaced, result.TotalInput)
	if result.DroppedSize > 0 {
		fmt.Fprintf(w, " (%d units dropped)", result.DroppedSize)
	}
	fmt.Fprintln(w)
}
