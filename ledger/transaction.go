package ledger

import (
	"math"

	"github.com/luca-patrignani/powchain/hashing"
	"github.com/luca-patrignani/powchain/merkle"
)

// RewardSender is the sender of the reward transaction opening every block.
const RewardSender = "Root"

// Transaction is a transfer of Amount from Sender to Receiver. Two
// transactions with the same fields are indistinguishable.
type Transaction struct {
	Sender   string  `json:"sender"`
	Receiver string  `json:"receiver"`
	Amount   float64 `json:"amount"`
}

// Hash returns the content hash of the transaction.
func (t Transaction) Hash() (string, error) {
	return hashing.Sum(t)
}

// IsReward reports whether t was minted by the ledger.
func (t Transaction) IsReward() bool {
	return t.Sender == RewardSender
}

func validAmount(a float64) bool {
	return !math.IsNaN(a) && !math.IsInf(a, 0)
}

// MerkleRoot hashes every transaction and folds the hashes into a root.
// An empty list yields hashing.ZeroHash.
func MerkleRoot(txs []Transaction) (string, error) {
	leaves, err := leafHashes(txs)
	if err != nil {
		return "", err
	}
	return merkle.Root(leaves), nil
}

func leafHashes(txs []Transaction) ([]string, error) {
	leaves := make([]string, len(txs))
	for i, tx := range txs {
		h, err := tx.Hash()
		if err != nil {
			return nil, err
		}
		leaves[i] = h
	}
	return leaves, nil
}
