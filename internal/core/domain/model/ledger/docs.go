// Package ledger provides the settlement-side aggregates of the domain.
//
// The package includes:
//   - ManualDaily: an administrator-entered lump-sum entry covering a day of
//     deliveries not tracked order-by-order. It carries a pre-computed
//     commission amount and becomes immutable history once reconciled.
//   - Payment: the immutable settlement record. Only the collected amount and
//     the referenced id sets are frozen; every derived breakdown is recomputed
//     on read so historical reports self-heal after order deletions.
//
// The outstanding-debt arithmetic that combines orders, manual dailies and
// driver commission configuration lives in the services package.
package ledger
