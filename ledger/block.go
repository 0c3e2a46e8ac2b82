package ledger

import (
	"fmt"
	"time"

	"github.com/luca-patrignani/powchain/hashing"
	"github.com/luca-patrignani/powchain/merkle"
)

// HeaderDraft is a header being mined. Field order is part of the hash format.
type HeaderDraft struct {
	Timestamp  int64  `json:"timestamp"` // milliseconds since epoch
	Nonce      uint32 `json:"nonce"`
	PrevHash   string `json:"prev_hash"`
	Merkle     string `json:"merkle"`
	Difficulty uint32 `json:"difficulty"`
}

// Hash returns the content hash of the draft with its current nonce.
func (d *HeaderDraft) Hash() (string, error) {
	return hashing.Sum(d)
}

// Header is the sealed, read-only header of a committed block.
type Header struct {
	fields HeaderDraft
}

// Timestamp returns the sealing time in milliseconds since epoch.
func (h Header) Timestamp() int64 { return h.fields.Timestamp }

// Nonce returns the nonce that satisfied the proof-of-work.
func (h Header) Nonce() uint32 { return h.fields.Nonce }

// PrevHash returns the hash of the previous header, ZeroHash for genesis.
func (h Header) PrevHash() string { return h.fields.PrevHash }

// Merkle returns the Merkle root of the block transactions.
func (h Header) Merkle() string { return h.fields.Merkle }

// Difficulty returns the difficulty the header was sealed at.
func (h Header) Difficulty() uint32 { return h.fields.Difficulty }

// Time returns the timestamp as a time.Time.
func (h Header) Time() time.Time {
	return time.UnixMilli(h.fields.Timestamp)
}

// Hash returns the content hash of the header.
func (h Header) Hash() string {
	return hashing.MustSum(h.fields)
}

// Block is a committed unit of the ledger.
type Block struct {
	header       Header
	count        uint32
	transactions []Transaction
}

// Header returns the sealed header.
func (b *Block) Header() Header { return b.header }

// Hash returns the hash of the block header.
func (b *Block) Hash() string { return b.header.Hash() }

// Count returns the number of transactions, reward included.
func (b *Block) Count() uint32 { return b.count }

// Transactions returns a copy of the transactions in seal order.
func (b *Block) Transactions() []Transaction {
	out := make([]Transaction, len(b.transactions))
	copy(out, b.transactions)
	return out
}

// Reward returns the reward transaction of the block.
func (b *Block) Reward() Transaction {
	if len(b.transactions) == 0 {
		return Transaction{}
	}
	return b.transactions[0]
}

// ProveTransaction returns the Merkle inclusion proof of the i-th transaction.
// The proof rebuilds Header().Merkle() from the transaction hash.
func (b *Block) ProveTransaction(i int) (merkle.Proof, error) {
	leaves, err := leafHashes(b.transactions)
	if err != nil {
		return nil, err
	}
	proof, err := merkle.Prove(leaves, i)
	if err != nil {
		return nil, fmt.Errorf("prove transaction %d: %w", i, err)
	}
	return proof, nil
}
