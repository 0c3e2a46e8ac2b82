// Package ledger implements an append-only, hash-chained ledger sealed by
// proof-of-work.
//
// # Core Components
//
// Ledger: owns the ordered list of committed blocks, the pool of pending
// transactions and the settings applied to the next block (difficulty, miner
// address, reward).
//
// Block: a committed header together with the ordered transactions it seals.
// Blocks expose their content through accessors only and never change after
// they are appended.
//
// HeaderDraft: the header of a block while it is being mined. Only the miner
// touches it; once sealed it is frozen into a Header.
//
// # Block Creation
//
// Creating a block snapshots the pending pool behind a reward transaction
// paid by "Root" to the miner address, computes the Merkle root of that list,
// searches a nonce satisfying the difficulty and appends the result. The
// pool is emptied on success and restored untouched if mining is aborted.
//
// # Integrity
//
//   - Every block stores the hash of its predecessor's header; the genesis
//     block stores hashing.ZeroHash.
//   - Every header stores the Merkle root of its transactions.
//   - Every header hash satisfies the proof-of-work predicate.
//
// Verify walks the chain and checks all three.
//
// A Ledger does no locking. Callers sharing one across goroutines must
// serialize every call themselves.
package ledger
