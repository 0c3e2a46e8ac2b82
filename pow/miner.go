// Package pow implements the proof-of-work nonce search.
//
// A Miner repeatedly asks the caller to hash its header with a candidate nonce,
// starting at zero and counting up, until the hash satisfies the sealing
// predicate for the requested difficulty. The search can be bounded by a
// context and by an attempt budget; neither changes the sealing predicate.
package pow

import (
	"context"
	"errors"
	"math"
)

var (
	ErrAttemptsExhausted   = errors.New("pow: attempt budget exhausted")
	ErrNonceSpaceExhausted = errors.New("pow: nonce space exhausted")
)

const defaultCheckInterval = 1024

// Result describes a sealed header.
type Result struct {
	Nonce    uint32
	Hash     string
	Attempts uint64
}

// Miner holds the sealing rules. The zero value is an unbounded ZeroPrefix miner.
type Miner struct {
	predicate     Predicate
	maxAttempts   uint64
	checkInterval uint32
}

type option func(Miner) Miner

// NewMiner returns an unbounded miner using ZeroPrefix.
func NewMiner(opts ...option) Miner {
	m := Miner{
		predicate:     ZeroPrefix,
		checkInterval: defaultCheckInterval,
	}
	for _, opt := range opts {
		m = opt(m)
	}
	return m
}

// WithPredicate sets the sealing predicate. Nil keeps ZeroPrefix.
func WithPredicate(p Predicate) option {
	return func(m Miner) Miner {
		if p != nil {
			m.predicate = p
		}
		return m
	}
}

// WithMaxAttempts bounds the number of hashes tried. Zero means no bound.
func WithMaxAttempts(n uint64) option {
	return func(m Miner) Miner {
		m.maxAttempts = n
		return m
	}
}

// WithCheckInterval sets how many attempts run between two context checks.
func WithCheckInterval(n uint32) option {
	return func(m Miner) Miner {
		if n > 0 {
			m.checkInterval = n
		}
		return m
	}
}

// Meets reports whether hash satisfies difficulty under the miner's predicate.
func (m Miner) Meets(hash string, difficulty uint32) bool {
	if m.predicate == nil {
		return ZeroPrefix(hash, difficulty)
	}
	return m.predicate(hash, difficulty)
}

// Seal searches for a nonce accepted by the predicate. try must hash the header
// with the given nonce; an error from try aborts the search.
func (m Miner) Seal(ctx context.Context, difficulty uint32, try func(nonce uint32) (string, error)) (Result, error) {
	interval := uint64(m.checkInterval)
	if interval == 0 {
		interval = defaultCheckInterval
	}
	var attempts uint64
	for nonce := uint32(0); ; nonce++ {
		if attempts%interval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{Nonce: nonce, Attempts: attempts}, err
			}
		}
		if m.maxAttempts > 0 && attempts >= m.maxAttempts {
			return Result{Nonce: nonce, Attempts: attempts}, ErrAttemptsExhausted
		}

		hash, err := try(nonce)
		if err != nil {
			return Result{Nonce: nonce, Attempts: attempts}, err
		}
		attempts++
		if m.Meets(hash, difficulty) {
			return Result{Nonce: nonce, Hash: hash, Attempts: attempts}, nil
		}
		if nonce == math.MaxUint32 {
			return Result{Nonce: nonce, Attempts: attempts}, ErrNonceSpaceExhausted
		}
	}
}
