package qmcgo_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/qmcgo"
	"github.com/hupe1980/qmcgo/discrepancy"
	"github.com/hupe1980/qmcgo/search"
)

// Example demonstrates searching for the rank-1 lattice generator
// minimizing a shift invariant discrepancy.
func Example() {
	// Criterion sized for an 8-point lattice in 2 dimensions.
	kern, err := discrepancy.NewShift1Lattice(8, 2)
	if err != nil {
		log.Fatal(err)
	}

	s, err := search.New(kern, false)
	if err != nil {
		log.Fatal(err)
	}

	// Scan all generators (1, a) with a coprime to 8.
	if _, err := s.ExhaustCoprime(2); err != nil {
		log.Fatal(err)
	}

	fmt.Println(s.BestGenerator())
	// Output: [1 3]
}

// Example_container demonstrates averaging a criterion over replicates
// with a container.
func Example_container() {
	kern, err := discrepancy.NewShift1Lattice(4, 1)
	if err != nil {
		log.Fatal(err)
	}

	c, err := qmcgo.NewContainer(kern)
	if err != nil {
		log.Fatal(err)
	}
	if err := c.Init(1); err != nil {
		log.Fatal(err)
	}

	// Accumulate four replicates at index 0, then divide by the count.
	origin := []float64{0}
	for r := 0; r < 4; r++ {
		c.Add1(0, origin, 1)
	}
	c.Scale(0, 0.25)

	fmt.Printf("%.4f\n", c.Values(0)[0])
	// Output: 0.4082
}

// Example_convergence demonstrates estimating a convergence rate: the
// regression slope of log2 criterion values against log2 n.
func Example_convergence() {
	kern, err := discrepancy.NewShift1Lattice(4, 1)
	if err != nil {
		log.Fatal(err)
	}

	c, err := qmcgo.NewContainer(kern)
	if err != nil {
		log.Fatal(err)
	}
	if err := c.Init(3); err != nil {
		log.Fatal(err)
	}

	// One-dimensional lattices {i/n}: the criterion is 1/(n*sqrt(6)),
	// so doubling n halves it and the slope comes out as -1.
	for i, n := range []int{4, 8, 16} {
		t := make([]float64, n)
		for k := range t {
			t[k] = float64(k) / float64(n)
		}

		c.Compute1(i, t, n)
		c.Log2(i)
		c.SetParam(i, float64(i+2)) // log2(n)
	}

	slopes := c.RegressionSlopes()
	fmt.Printf("%.2f\n", slopes[0])
	// Output: -1.00
}

// Example_metrics demonstrates collecting search metrics in memory.
func Example_metrics() {
	kern, err := discrepancy.NewShift1Lattice(8, 2)
	if err != nil {
		log.Fatal(err)
	}

	metrics := &qmcgo.BasicMetricsCollector{}
	s, err := search.New(kern, false, search.WithMetrics(metrics))
	if err != nil {
		log.Fatal(err)
	}

	if _, err := s.ExhaustCoprime(2); err != nil {
		log.Fatal(err)
	}

	stats := metrics.GetStats()
	fmt.Printf("searches=%d evaluations=%d\n", stats.SearchCount, stats.Evaluations)
	// Output: searches=1 evaluations=4
}
