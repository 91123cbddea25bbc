// Command demo runs the canonical bin-allocation demonstration cases
// and prints each packing result to stdout.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/bin-allocator/internal/logging"
	"github.com/eugenenazirov/bin-allocator/internal/packer"
	"github.com/eugenenazirov/bin-allocator/internal/report"
)

func main() {
	kingpinApp := kingpin.New("bin-allocator-demo", "Runs the canonical bin allocation demonstration cases")
	seed := kingpinApp.Flag("seed", "Seed for the random item case").Default("1").Int64()
	debugFlag := kingpinApp.Flag("debug", "Log per-item placement traces").Bool()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	logger := zap.NewNop()
	if *debugFlag {
		built, err := logging.New(true)
		if err != nil {
			panic(fmt.Sprintf("failed to initialize logger: %v", err))
		}
		defer func() {
			_ = built.Sync()
		}()
		logger = built
	}

	allocator := packer.New(packer.WithLogger(logger))

	run(allocator, demoCase{
		title: "Simple case: 3 items (two of height 1, one of height 2), one bin of 30.\n" +
			"Larger items placed first, bins filled in sequential order.",
		policy:       packer.PolicySequential,
		largestFirst: true,
		items:        packer.Items(1, 2, 1),
		capacities:   []int{30},
	})

	rng := rand.New(rand.NewSource(*seed))
	randomSizes := make([]int, 45)
	for i := range randomSizes {
		randomSizes[i] = 1 + rng.Intn(2)
	}
	run(allocator, demoCase{
		title: "Random case: 45 items of height 1 or 2, three bins of 34.\n" +
			"Items distributed evenly amongst bins.",
		policy:     packer.PolicyRoundRobin,
		items:      packer.Items(randomSizes...),
		capacities: []int{34, 34, 34},
	})

	run(allocator, demoCase{
		title: "45 items of height 1, 36 items of height 2, four bins of 30.\n" +
			"Items distributed evenly amongst bins.",
		policy:     packer.PolicyRoundRobin,
		items:      repeatedItems(45, 1, 36, 2),
		capacities: []int{30, 30, 30, 30},
	})

	run(allocator, demoCase{
		title: "57 items of height 1, 38 items of height 2, five bins of 30.\n" +
			"Items distributed evenly amongst bins.",
		policy:     packer.PolicyRoundRobin,
		items:      repeatedItems(57, 1, 38, 2),
		capacities: []int{30, 30, 30, 30, 30},
	})

	run(allocator, demoCase{
		title: "57 items of height 1, 38 items of height 2.\n" +
			"First bin holds 29, the remaining four hold 30 each.",
		policy:     packer.PolicyRoundRobin,
		items:      repeatedItems(57, 1, 38, 2),
		capacities: []int{29, 30, 30, 30, 30},
	})

	fmt.Println("INTENTIONAL demonstration of container overflow:")
	run(allocator, demoCase{
		title: "57 items of height 1, 38 items of height 2.\n" +
			"First bin holds only 2 units; items assigned to it are skipped once it is full.",
		policy:     packer.PolicyRoundRobin,
		items:      repeatedItems(57, 1, 38, 2),
		capacities: []int{2, 40, 40, 40, 40},
	})
}

type demoCase struct {
	title        string
	policy       packer.Policy
	largestFirst bool
	items        []packer.Item
	capacities   []int
}

func run(allocator *packer.Allocator, c demoCase) {
	bins, err := allocator.Pack(c.policy, c.items, c.capacities, c.largestFirst)
	if err != nil {
		fmt.Fprintf(os.Stderr, "packing failed: %v\n", err)
		os.Exit(1)
	}
	report.WriteResult(os.Stdout, c.title, packer.Summarize(bins, c.items))
	fmt.Println()
}

func repeatedItems(countA, sizeA, countB, sizeB int) []packer.Item {
	items := make([]packer.Item, 0, countA+countB)
	for i := 0; i < countA; i++ {
		items = append(items, packer.NewItem(sizeA))
	}
	for i := 0; i < countB; i++ {
		items = append(items, packer.NewItem(sizeB))
	}
	return items
}
