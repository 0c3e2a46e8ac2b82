package ledger

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/powchain/hashing"
	"github.com/luca-patrignani/powchain/pow"
)

// ErrInvalidBlock wraps every integrity failure found by Verify.
var ErrInvalidBlock = errors.New("invalid block")

// Verify checks the integrity of the whole chain: linkage, Merkle roots,
// reward transactions and proof-of-work.
func (l *Ledger) Verify() error {
	if len(l.blocks) == 0 {
		return errors.New("empty ledger")
	}
	var prev *Block
	for i, b := range l.blocks {
		if err := VerifyBlock(b, prev, l.miner); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
		prev = b
	}
	return nil
}

// VerifyBlock checks block against its predecessor. prev is nil for the
// genesis block.
func VerifyBlock(block, prev *Block, miner pow.Miner) error {
	if block == nil {
		return fmt.Errorf("%w: nil block", ErrInvalidBlock)
	}
	h := block.header

	expectedPrev := hashing.ZeroHash
	if prev != nil {
		expectedPrev = prev.Hash()
	}
	if h.PrevHash() != expectedPrev {
		return fmt.Errorf("%w: invalid prev hash: expected %s, got %s", ErrInvalidBlock, expectedPrev, h.PrevHash())
	}

	if int(block.count) != len(block.transactions) {
		return fmt.Errorf("%w: count %d does not match %d transactions", ErrInvalidBlock, block.count, len(block.transactions))
	}
	if len(block.transactions) == 0 || !block.transactions[0].IsReward() {
		return fmt.Errorf("%w: first transaction is not a reward", ErrInvalidBlock)
	}

	root, err := MerkleRoot(block.transactions)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBlock, err)
	}
	if root != h.Merkle() {
		return fmt.Errorf("%w: invalid merkle root: expected %s, got %s", ErrInvalidBlock, root, h.Merkle())
	}

	if hash := h.Hash(); !miner.Meets(hash, h.Difficulty()) {
		return fmt.Errorf("%w: hash %s does not meet difficulty %d", ErrInvalidBlock, hash, h.Difficulty())
	}
	return nil
}
