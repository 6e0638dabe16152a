// Package services contains domain services that coordinate operations
// across multiple aggregates.
//
// The package includes:
//   - ClaimService: Executes the claim protocol, pairing the order
//     assignment with the wallet debit that pays for it
//
// Domain services here hold no state and perform no I/O; transactional
// persistence of the aggregates they touch belongs to the command layer.
package services
