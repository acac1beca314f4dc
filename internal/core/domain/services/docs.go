// Package services contains stateless domain services that operate across
// aggregates.
//
// LedgerCalculator derives a driver's outstanding debt from orders, manual
// daily entries and the driver's commission configuration. It is deliberately
// pure: both the settlement write path and the reporting read paths call the
// same arithmetic, so the two can never drift apart.
package services
