package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eugenenazirov/bin-allocator/internal/packer"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	allocator := packer.New()
	bins, err := allocator.PackSequential(packer.Items(1, 2, 1), []int{30}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	Write(&buf, "Simple case", bins)

	out := buf.String()
	if !strings.Contains(out, "Simple case") {
		t.Fatalf("expected title in output, got:\n%s", out)
	}
	if !strings.Contains(out, "Packing solution requires 1 bin containers") {
		t.Fatalf("expected bin count line, got:\n%s", out)
	}
	if !strings.Contains(out, "Bin(index=0 capacity=30 filled=4 unused=26 items=[2 1 1])") {
		t.Fatalf("expected bin line, got:\n%s", out)
	}
}

func TestWriteResultFlagsDrops(t *testing.T) {
	t.Parallel()

	items := packer.Items(1, 1, 1, 1, 1, 1, 1, 1, 1)
	allocator := packer.New()
	bins, err := allocator.PackRoundRobin(items, []int{2, 5, 5}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	WriteResult(&buf, "Overflow case", packer.Summarize(bins, items))

	out := buf.String()
	if !strings.Contains(out, "Placed 8 of 9 total units") {
		t.Fatalf("expected placement totals, got:\n%s", out)
	}
	if !strings.Contains(out, "(1 units dropped)") {
		t.Fatalf("expected drop notice, got:\n%s", out)
	}
}
