// Package pricebook keeps the price ledger of a small kitchen: daily prices
// of food commodities quoted by two suppliers, uploaded as spreadsheets, and
// the orders placed against them.
//
// The core functionalities include:
//   - Import: validating an uploaded sheet ([Table]) and appending it, as one
//     batch, to the append-only price history.
//   - Queries: the latest price list, the history and trend of an item, the
//     comparison of two days, and the list of known days.
//   - Price alerts: detecting price moves beyond a threshold between a batch
//     and the previous day.
//   - Orders: pricing a list of quantities against the latest prices, saving
//     confirmed orders and recalling the last one.
//   - Persistence: a plain CSV layout that spreadsheets open directly
//     ([FileStore]), an in-memory store for tests, and an SQLite store in the
//     sqlite sub package.
//
// Stores are never cached: every operation reads the store, works in memory
// and writes it back.
package pricebook
