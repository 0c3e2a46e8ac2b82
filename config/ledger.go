package config

import "github.com/luca-patrignani/powchain/pow"

// Ledger holds the settings of the ledger and its miner.
type Ledger struct {
	Miner       string  `yaml:"miner"`
	Difficulty  uint32  `yaml:"difficulty"`
	Reward      float64 `yaml:"reward"`
	MaxAttempts uint64  `yaml:"maxAttempts"`
	Predicate   string  `yaml:"predicate"`
}

// LedgerConfig is filled by flags and the settings file.
var LedgerConfig = new(Ledger)

// NewMiner builds the proof-of-work miner described by the settings.
func (l *Ledger) NewMiner() pow.Miner {
	predicate, _ := pow.PredicateByName(l.Predicate)
	return pow.NewMiner(
		pow.WithPredicate(predicate),
		pow.WithMaxAttempts(l.MaxAttempts),
	)
}
