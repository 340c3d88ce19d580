// Package minifire provides the types and computations behind a personal
// dashboard for FIRE (Financial Independence, Retire Early) planning.
//
// The core functionalities include:
//   - Projection: a monthly compound-interest simulation of the assets,
//     from the current holdings up to a target, with the 4% rule to derive
//     a passive income. See Project.
//   - Dashboard: holdings, expenses of the month and side jobs, with the
//     totals, savings rate and breakdowns shown to the user.
//   - Insights: the data exchanged with the AI advisor (advice, market
//     insight, national strategy sectors and stock histories).
//
// This package serves as the foundational logic for the `fire` command-line
// tool. It performs no I/O beyond decoding a dashboard file.
package minifire
