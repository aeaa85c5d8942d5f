package main

import (
	"fmt"
	"log"
	"log/slog"
	"runtime"
	"time"

	"github.com/hupe1980/qmcgo"
	"github.com/hupe1980/qmcgo/discrepancy"
	"github.com/hupe1980/qmcgo/pointset"
	"github.com/hupe1980/qmcgo/search"
)

func main() {
	n := 1021 // prime
	dim := 6
	workers := runtime.NumCPU()

	logger := qmcgo.NewTextLogger(slog.LevelDebug)
	metrics := &qmcgo.BasicMetricsCollector{}

	kern, err := discrepancy.NewShiftBaker1Lattice(n, dim)
	if err != nil {
		log.Fatal(err)
	}

	opts := []search.Option{
		search.WithLogger(logger),
		search.WithMetrics(metrics),
		search.WithWorkers(workers),
	}

	fmt.Println("--- Korobov ---")
	fmt.Println("Points:", n)
	fmt.Println("Dimension:", dim)
	fmt.Println("Workers:", workers)

	kor, err := search.NewKorobov(kern, true, opts...)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()

	best, err := kor.ExhaustCoprime(dim)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Multiplier:", kor.BestMultiplier())
	fmt.Printf("Value: %.6g\n", best)
	fmt.Printf("Seconds: %.2f\n\n", time.Since(start).Seconds())

	fmt.Println("--- CBC ---")

	cbc, err := search.NewCBC(kern, true, opts...)
	if err != nil {
		log.Fatal(err)
	}

	start = time.Now()

	best, err = cbc.ExhaustCoprime(dim)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Generator:", cbc.BestGenerator())
	fmt.Printf("Value: %.6g\n", best)
	fmt.Printf("Seconds: %.2f\n\n", time.Since(start).Seconds())

	fmt.Println("--- Random ---")

	s, err := search.New(kern, true, opts...)
	if err != nil {
		log.Fatal(err)
	}

	start = time.Now()

	best, err = s.RandomCoprime(dim, 10000)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Generator:", s.BestGenerator())
	fmt.Printf("Value: %.6g\n", best)
	fmt.Printf("Seconds: %.2f\n\n", time.Since(start).Seconds())

	fmt.Println("--- Report ---")

	lat, err := pointset.NewRank1(n, cbc.BestGenerator(), dim)
	if err != nil {
		log.Fatal(err)
	}

	star, err := discrepancy.NewL2Star(n, dim)
	if err != nil {
		log.Fatal(err)
	}
	shift1, err := discrepancy.NewShift1Lattice(n, dim)
	if err != nil {
		log.Fatal(err)
	}
	palpha, err := discrepancy.NewPAlpha(n, dim, 2)
	if err != nil {
		log.Fatal(err)
	}

	c, err := qmcgo.NewContainer(star, shift1, kern, palpha)
	if err != nil {
		log.Fatal(err)
	}
	if err := c.InitLabeled(1, "Criteria of the CBC lattice", "n", "D(P)"); err != nil {
		log.Fatal(err)
	}

	c.Compute(0, pointset.Matrix(lat), n, dim)
	c.SetParam(0, float64(n))

	fmt.Print(c)
	fmt.Println()

	fmt.Println("--- Metrics ---")

	stats := metrics.GetStats()
	fmt.Println("Searches:", stats.SearchCount)
	fmt.Println("Evaluations:", stats.Evaluations)
	fmt.Println("Improvements:", stats.Improvements)
	fmt.Println("Precision losses:", stats.PrecisionLosses)
}
