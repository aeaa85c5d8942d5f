package intmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"coprime", 8, 15, 1},
		{"common factor", 12, 18, 6},
		{"equal", 7, 7, 7},
		{"one zero", 0, 5, 5},
		{"both zero", 0, 0, 0},
		{"negative x", -4, 6, 2},
		{"negative y", 4, -6, 2},
		{"both negative", -9, -6, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GCD(tt.x, tt.y))
		})
	}
}

func TestCoprime(t *testing.T) {
	assert.True(t, Coprime(3, 8))
	assert.True(t, Coprime(1, 16))
	assert.False(t, Coprime(6, 8))
	assert.False(t, Coprime(0, 8))
}

func TestModPow(t *testing.T) {
	tests := []struct {
		name string
		a    int64
		e    int
		m    int
		want int64
	}{
		{"zero exponent", 3, 0, 17, 1},
		{"identity", 5, 1, 17, 5},
		{"square", 3, 2, 17, 9},
		{"wraps", 3, 4, 17, 13}, // 81 mod 17
		{"large exponent", 2, 30, 1000003, 738605},
		{"negative base", -3, 3, 17, 7}, // (-27) mod 17
		{"modulus one", 5, 3, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ModPow(tt.a, tt.e, tt.m))
		})
	}
}

func TestModPow_MatchesNaive(t *testing.T) {
	const m = 101
	for a := int64(1); a < 20; a++ {
		want := int64(1)
		for e := 0; e < 12; e++ {
			assert.Equal(t, want, ModPow(a, e, m), "a=%d e=%d", a, e)
			want = want * a % m
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	assert.True(t, IsPowerOfTwo(1))
	assert.True(t, IsPowerOfTwo(2))
	assert.True(t, IsPowerOfTwo(1024))
	assert.False(t, IsPowerOfTwo(0))
	assert.False(t, IsPowerOfTwo(-8))
	assert.False(t, IsPowerOfTwo(12))
	assert.False(t, IsPowerOfTwo(1023))
}
