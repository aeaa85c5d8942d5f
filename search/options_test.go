package search

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/qmcgo"
)

func TestApplyOptions_Defaults(t *testing.T) {
	o := applyOptions(nil)

	assert.Equal(t, 1, o.workers)
	assert.Equal(t, uint64(defaultSeed), o.seed)
	assert.NotNil(t, o.rng)
	assert.NotNil(t, o.logger)
	assert.IsType(t, qmcgo.NoopMetricsCollector{}, o.metrics)
}

func TestApplyOptions_SeededStreamsMatch(t *testing.T) {
	o1 := applyOptions([]Option{WithSeed(5)})
	o2 := applyOptions([]Option{WithSeed(5)})

	for i := 0; i < 16; i++ {
		require.Equal(t, o1.rng.Uint64(), o2.rng.Uint64())
	}
}

func TestApplyOptions_WithRandOverridesSeed(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	o := applyOptions([]Option{WithSeed(5), WithRand(rng)})

	assert.Same(t, rng, o.rng)
}

func TestApplyOptions_WorkersFloor(t *testing.T) {
	o := applyOptions([]Option{WithWorkers(-3)})
	assert.Equal(t, 1, o.workers)
}

func TestApplyOptions_NilOption(t *testing.T) {
	assert.NotPanics(t, func() {
		applyOptions([]Option{nil})
	})
}
