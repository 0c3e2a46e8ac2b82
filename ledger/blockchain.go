package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/luca-patrignani/powchain/hashing"
	"github.com/luca-patrignani/powchain/pow"
)

const (
	// DefaultReward is paid to the miner when WithReward is not given.
	DefaultReward = 100.0
	// MaxDifficulty is the longest prefix a hash can have. At this difficulty
	// only the all-zero hash qualifies, so mining runs until the miner gives up.
	MaxDifficulty = hashing.HexLen
)

// ErrDifficultyRange is returned for a difficulty above MaxDifficulty.
var ErrDifficultyRange = fmt.Errorf("difficulty must be at most %d", MaxDifficulty)

// Ledger is a single-writer chain of blocks plus the pool of transactions
// waiting for the next one.
type Ledger struct {
	blocks       []*Block
	pending      []Transaction
	difficulty   uint32
	minerAddress string
	reward       float64

	miner  pow.Miner
	now    func() time.Time
	logger *slog.Logger
}

// New creates a ledger and mines its genesis block. No ledger is returned
// if the genesis block cannot be sealed.
func New(ctx context.Context, minerAddress string, difficulty uint32, opts ...option) (*Ledger, error) {
	if difficulty > MaxDifficulty {
		return nil, ErrDifficultyRange
	}
	l := Ledger{
		blocks:       make([]*Block, 0),
		difficulty:   difficulty,
		minerAddress: minerAddress,
		reward:       DefaultReward,
		miner:        pow.NewMiner(),
		now:          time.Now,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		l = opt(l)
	}

	if _, err := l.CreateBlock(ctx); err != nil {
		return nil, fmt.Errorf("mine genesis block: %w", err)
	}
	return &l, nil
}

// SubmitTransaction appends a transaction to the pending pool. It only
// refuses amounts that cannot be hashed (NaN and infinities).
func (l *Ledger) SubmitTransaction(sender, receiver string, amount float64) bool {
	if !validAmount(amount) {
		return false
	}
	l.pending = append(l.pending, Transaction{
		Sender:   sender,
		Receiver: receiver,
		Amount:   amount,
	})
	l.logger.Debug("transaction submitted", "sender", sender, "receiver", receiver, "amount", amount, "pending", len(l.pending))
	return true
}

// LastHash returns the header hash of the latest block, or hashing.ZeroHash
// when there is none.
func (l *Ledger) LastHash() string {
	if len(l.blocks) == 0 {
		return hashing.ZeroHash
	}
	return l.blocks[len(l.blocks)-1].Hash()
}

// CreateBlock seals the pending pool into a new block and appends it.
//
// If mining stops early (ctx done, attempt budget of the miner exhausted)
// nothing is appended and the pending pool is left as it was.
func (l *Ledger) CreateBlock(ctx context.Context) (*Block, error) {
	height := len(l.blocks)
	draft := HeaderDraft{
		Timestamp:  l.now().UnixMilli(),
		Nonce:      0,
		PrevHash:   l.LastHash(),
		Difficulty: l.difficulty,
	}

	reward := Transaction{
		Sender:   RewardSender,
		Receiver: l.minerAddress,
		Amount:   l.reward,
	}
	txs := make([]Transaction, 0, len(l.pending)+1)
	txs = append(txs, reward)
	txs = append(txs, l.pending...)
	consumed := l.pending
	l.pending = nil

	merkleRoot, err := MerkleRoot(txs)
	if err != nil {
		l.pending = consumed
		return nil, fmt.Errorf("merkle root of block %d: %w", height, err)
	}
	draft.Merkle = merkleRoot

	res, err := l.miner.Seal(ctx, draft.Difficulty, func(nonce uint32) (string, error) {
		draft.Nonce = nonce
		return draft.Hash()
	})
	if err != nil {
		l.pending = consumed
		l.logger.Warn("mining aborted", "height", height, "attempts", res.Attempts, "error", err)
		return nil, fmt.Errorf("seal block %d: %w", height, err)
	}
	draft.Nonce = res.Nonce

	block := &Block{
		header:       Header{fields: draft},
		count:        uint32(len(txs)),
		transactions: txs,
	}
	l.blocks = append(l.blocks, block)

	l.logger.Info("block sealed",
		"height", height,
		"hash", res.Hash,
		"nonce", res.Nonce,
		"attempts", res.Attempts,
		"transactions", block.count,
	)
	return block, nil
}

// SetDifficulty changes the difficulty of the next block. MaxDifficulty is
// accepted but in practice never sealed: with an unbounded miner CreateBlock
// walks every nonce and fails with pow.ErrNonceSpaceExhausted, so pair it with
// pow.WithMaxAttempts or a context deadline.
func (l *Ledger) SetDifficulty(difficulty uint32) error {
	if difficulty > MaxDifficulty {
		return ErrDifficultyRange
	}
	l.difficulty = difficulty
	return nil
}

// Difficulty returns the difficulty of the next block.
func (l *Ledger) Difficulty() uint32 {
	return l.difficulty
}

// SetReward changes the reward of the next block. It refuses NaN and infinities.
func (l *Ledger) SetReward(reward float64) bool {
	if !validAmount(reward) {
		return false
	}
	l.reward = reward
	return true
}

// Reward returns the reward of the next block.
func (l *Ledger) Reward() float64 {
	return l.reward
}

// SetMinerAddress changes the receiver of the next block's reward.
func (l *Ledger) SetMinerAddress(address string) {
	l.minerAddress = address
}

// MinerAddress returns the receiver of the next block reward.
func (l *Ledger) MinerAddress() string {
	return l.minerAddress
}

// Blocks returns the committed blocks, genesis first.
func (l *Ledger) Blocks() []*Block {
	out := make([]*Block, len(l.blocks))
	copy(out, l.blocks)
	return out
}

// Len returns the number of committed blocks.
func (l *Ledger) Len() int {
	return len(l.blocks)
}

// Last returns the latest committed block.
func (l *Ledger) Last() (*Block, error) {
	if len(l.blocks) == 0 {
		return nil, errors.New("ledger is empty")
	}
	return l.blocks[len(l.blocks)-1], nil
}

// Pending returns a copy of the pending pool in submission order.
func (l *Ledger) Pending() []Transaction {
	out := make([]Transaction, len(l.pending))
	copy(out, l.pending)
	return out
}
