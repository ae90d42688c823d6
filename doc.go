// Package coinwatch provides the core logic for a small crypto portfolio
// watcher. It is designed to be local-first: the whole portfolio lives in a
// single user-edited settings file, and the package revalues it against
// live market quotes on a fixed cadence.
//
// The core functionalities include:
//   - Ledger Folding: turning the raw streams of ledger entries (buys,
//     sells) and transfers into per-asset and per-wallet holdings with an
//     exact cost basis.
//   - Valuation: fetching one batched quote for all held assets from
//     CryptoCompare and producing an immutable PortfolioSnapshot with
//     per-coin, per-wallet and portfolio-level statistics.
//   - Presentation Inputs: building the tooltip text consumed by the
//     status icon, within its fixed character budget.
//
// The orthogonal concerns live in subpackages: settings (the hot-reloading
// settings store), timer (the self-correcting periodic scheduler), icon
// (the 16x16 bar-chart renderer) and renderer (markdown reports). The
// `ccw` command ties them together.
package coinwatch

// Version is the application version, used in the tooltip signature.
const Version = "0.4.0"
