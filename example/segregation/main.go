package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/carbocation/famrisk"
)

func main() {
	m := flag.Int("m", 2, "Number of affected relatives")
	k := flag.Int("k", 8, "Number of relatives with known status")
	pf := flag.Float64("pf", 0.2, "Per-relative risk of familial disease")
	pr := flag.Float64("pr", 0.05, "Per-relative risk of sporadic disease")
	priorF := flag.Float64("prior", 0.0865, "Prior probability that a pedigree is familial")
	r := flag.Int("r", 0, "Number of cases allowed to be sporadic")
	flag.Parse()

	res, err := famrisk.SegregationProbabilities(*m, *k, *pf, *pr, *priorF, *r)
	if errors.Is(err, famrisk.ErrUndefined) {
		log.Println(err)
	} else if err != nil {
		log.Fatalln(err)
	}

	fmt.Printf("P(data|familial)=%.6g\n", res.MProb)
	fmt.Printf("P(data|sporadic)=%.6g\n", res.RProb)
	fmt.Printf("P(familial|data)=%.6f\n", res.ProbFamilial)
	fmt.Printf("P(at least %d of %d cases familial)=%.6f\n", *m-*r, *m, res.AllFamilial)
}
