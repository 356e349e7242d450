// Package committee provides the data model and derivation pipeline used by
// the FIDUS Investment Committee to analyse weekly fund performance. It is
// designed to be local-first: the authoritative figures live in the FIDUS
// backend, and this package keeps a human-readable local snapshot that is
// refreshed on every successful fetch.
//
// The core functionalities include:
//   - Weekly Series Management: storing and editing per-fund weekly
//     percentage returns, with lenient parsing of untrusted cell input.
//   - Simulation Overlay: a non-destructive what-if substitution of the most
//     recent week's returns, applied to a cloned effective series.
//   - NAV Projection: compounding weekly returns into a per-fund NAV-index
//     series starting at 100.
//   - Weighted Aggregation: blending per-fund returns into a single portfolio
//     return using the normalized allocation split.
//   - Import/Export: reading committee workbooks and CSV files through an
//     explicit header alias table, and exporting the series as CSV or JSON.
//
// This package serves as the foundational logic for the `fidus` command-line
// tool, ensuring that all derivations are pure functions over an immutable
// snapshot of the upstream state.
package committee
