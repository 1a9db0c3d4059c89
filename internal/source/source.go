// Package source produces the scalar observations plotted by the strip chart.
package source

import (
	"math/rand"
	"time"
)

// Source yields one observation per call. Implementations are infinite and
// advance internal state on every call.
type Source interface {
	Next() float64
}

// Uniform draws values independently from [0,1).
type Uniform struct {
	rng *rand.Rand
}

// NewUniform wraps an existing generator. The generator is owned by the
// caller; Uniform only advances it.
func NewUniform(rng *rand.Rand) *Uniform {
	return &Uniform{rng: rng}
}

// NewSeeded creates a Uniform backed by its own generator. A zero seed
// seeds from the wall clock.
func NewSeeded(seed int64) *Uniform {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewUniform(rand.New(rand.NewSource(seed)))
}

func (u *Uniform) Next() float64 {
	return u.rng.Float64()
}
