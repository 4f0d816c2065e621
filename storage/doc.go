// Package storage provides the durable persistence adapter for the credit
// ledger: a bbolt-backed key-value store holding the whole serialized
// snapshot in a single named slot. It is pure read/write plumbing with no
// business logic; the state store decides when to save and what a missing
// slot means.
package storage
