// Package order provides the Order aggregate of the print shop together with
// its value objects.
//
// The package includes:
//   - Order: a print job with denormalized user and material snapshots
//   - Status: a closed enum with an explicit transition table
//   - Priority: normal, rush or vip
//   - IDGenerator: an atomic, never-reusing order ID source
//
// Key business rules:
//   - Orders start Pending with Normal priority
//   - Status follows Pending -> Processing -> Printing -> PostProcessing -> Completed,
//     with Processing -> Pending and Printing -> Completed as shortcuts
//   - UpdateStatus bypasses the table for compatibility with loosely typed callers
package order
