// SPDX-License-Identifier: MIT
// Package store caches optimization results on disk.
//
// Results live in a badger key-value database. The key is the xxhash of a
// canonical CBOR encoding of the die's shape (Fingerprint), so renaming a
// die or listing its adjacencies in another order hits the same entry.
// Values are CBOR-encoded Records carrying a random UUID and the time the
// result was stored.
//
// The search is exhaustive and deterministic, so a cached record is as good
// as a fresh run; the CLI consults the store before optimizing and writes
// back afterwards.
package store
