// Package credittrail provides the core of a personal credit ledger: a
// single-user, offline record of loans (credits) and repayments exchanged
// with a set of people, organized by physical locations.
//
// The core functionalities include:
//   - Entity Model: Person, Location and Transaction records, plus the
//     derived Dashboard aggregate (total credits, total repayments,
//     outstanding amount, people count).
//   - State Store: the single owner of the canonical collections. It applies
//     a closed set of mutation commands copy-on-write, keeps the Dashboard
//     incrementally consistent with the transaction list, cascades deletes,
//     and persists every accepted mutation.
//   - Reconciliation: the Dashboard can always be re-derived from scratch by
//     folding over the transaction list, and the store can verify that the
//     incremental bookkeeping never drifted from that oracle.
//   - Data Persistence: encoding and decoding of the whole state tree to a
//     single JSON document, stored in a durable local slot.
//   - Backup Transfer: exporting the state to a dated backup file and
//     validating and restoring such a file as a full replacement.
//
// This package serves as the foundational logic for the `ctrail` command
// line tool, ensuring that all operations are consistent and based on a
// single source of truth.
package credittrail
