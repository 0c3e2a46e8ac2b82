package ledger

import (
	"log/slog"
	"time"

	"github.com/luca-patrignani/powchain/pow"
)

type option func(Ledger) Ledger

// WithReward sets the initial reward. Non-finite values are ignored.
func WithReward(reward float64) option {
	return func(l Ledger) Ledger {
		if validAmount(reward) {
			l.reward = reward
		}
		return l
	}
}

// WithClock replaces the wall clock used to timestamp headers.
func WithClock(now func() time.Time) option {
	return func(l Ledger) Ledger {
		if now != nil {
			l.now = now
		}
		return l
	}
}

// WithMiner replaces the proof-of-work miner.
func WithMiner(m pow.Miner) option {
	return func(l Ledger) Ledger {
		l.miner = m
		return l
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) option {
	return func(l Ledger) Ledger {
		if logger != nil {
			l.logger = logger
		}
		return l
	}
}
