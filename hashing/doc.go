// Package hashing implements the content hash that binds the ledger together.
//
// Every value is first rendered to its canonical JSON encoding (struct fields in
// declaration order) and then digested with SHA-256. The digest is rendered as
// 64 lowercase hex characters. Changing the encoding of any hashed type is a
// breaking change: previously sealed blocks would no longer verify.
package hashing
