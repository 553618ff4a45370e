package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/carbocation/famrisk"
	"github.com/carbocation/pfx"
)

func main() {
	affected := flag.String("affected", "2,2,2,4,2,2,2", "Comma-separated number of affected relatives in each pedigree")
	known := flag.String("known", "9,9,10,7,9,14,7", "Comma-separated number of relatives with known status in each pedigree")
	r := flag.Int("r", 2, "Minimum number of affected relatives a pedigree needed to be ascertained")
	golden := flag.Bool("golden", false, "Use golden section search instead of Brent's method")
	flag.Parse()

	m, err := parseCounts(*affected)
	if err != nil {
		log.Fatalln(err)
	}
	k, err := parseCounts(*known)
	if err != nil {
		log.Fatalln(err)
	}

	peds, err := famrisk.PedigreesFromCounts(m, k)
	if err != nil {
		log.Fatalln(err)
	}

	opts := famrisk.DefaultOptions()
	if *golden {
		opts.Method = famrisk.GoldenSection
	}

	log.Println("Estimating from", len(peds), "pedigrees with", opts.Method)
	est, err := famrisk.EstimatePenetranceWithOptions(peds, *r, opts)
	if err != nil {
		log.Fatalln(err)
	}

	lo, hi := est.ConfidenceInterval(0.95)
	fmt.Printf("pf=%.6f (95%% CI %.4f-%.4f) -logL=%.4f\n", est.P, lo, hi, est.NegLogLikelihood)
	log.Printf("%d iterations, %d evaluations\n", est.Iterations, est.Evaluations)
}

func parseCounts(list string) ([]int, error) {
	fields := strings.Split(list, ",")
	out := make([]int, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, pfx.Err(err)
		}
		out = append(out, v)
	}

	return out, nil
}
