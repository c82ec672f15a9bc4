// Package expense provides the core data structures and functions for
// managing a personal expense ledger. It is designed to be local-first,
// auditable, and forgiving, ensuring users keep full control over their
// spending data in a single plain-text file.
//
// The core functionalities include:
//   - Ledger Management: Recording expenses in insertion order, assigning
//     monotonically increasing identifiers, and answering the list, summary,
//     and delete operations over the loaded record set.
//   - Data Persistence: Handling the encoding and decoding of the ledger to
//     and from a human-readable, hand-editable line format. Decoding is
//     deliberately lenient: malformed lines are skipped, never fatal, so a
//     partially corrupted file remains usable.
//   - Import/Export: Converting the ledger to and from JSONL, including
//     field-mapped imports from arbitrary bank-export JSON files.
//
// This package serves as the foundational logic for the `xps` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package expense
