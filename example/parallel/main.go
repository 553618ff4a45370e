package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/carbocation/famrisk"
	"golang.org/x/sync/errgroup"
)

// Sweeps the familial risk over a grid and reports, for each value, the
// posterior probability that each pedigree is familial. Every grid point is
// independent, so the work is spread over one goroutine per CPU.
func main() {
	pr := flag.Float64("pr", 0.05, "Per-relative risk of sporadic disease")
	priorF := flag.Float64("prior", 0.0865, "Prior probability that a pedigree is familial")
	steps := flag.Int("steps", 20, "Number of pf values between 0 and 1, exclusive")
	flag.Parse()

	if *steps < 1 {
		flag.PrintDefaults()
		log.Fatalln("steps must be at least 1")
	}

	peds := []famrisk.Pedigree{
		{Affected: 2, Known: 8},
		{Affected: 4, Known: 7},
		{Affected: 8, Known: 8},
	}

	grid := make([]float64, *steps)
	for i := range grid {
		grid[i] = float64(i+1) / float64(*steps+1)
	}

	// Each worker writes only its own row
	results := make([][]*famrisk.FamilialDiseaseResult, len(grid))

	log.Println("Launching", runtime.NumCPU(), "workers")
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, pf := range grid {
		i, pf := i, pf
		g.Go(func() error {
			row, err := famrisk.SegregationForPedigrees(peds, pf, *pr, *priorF, 0)
			if err != nil {
				return fmt.Errorf("pf=%v: %w", pf, err)
			}
			results[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalln(err)
	}

	fmt.Print("pf")
	for _, ped := range peds {
		fmt.Printf("\t%d/%d", ped.Affected, ped.Known)
	}
	fmt.Println()
	for i, pf := range grid {
		fmt.Printf("%.3f", pf)
		for _, res := range results[i] {
			fmt.Printf("\t%.4f", res.ProbFamilial)
		}
		fmt.Println()
	}
}
