// Package partner provides domain entities and business logic for regional
// buy-back partners. It implements the Partner aggregate root with coin-wallet
// accounting, pickup-agent management and device-bound session authority.
//
// The package includes:
//   - Partner: The aggregate root that manages partner identity, wallet and agents
//   - Wallet: The coin account with an append-only transaction trail
//   - PickupAgent: A partner's field worker who can collect devices on their behalf
//   - Status: active/blocked partner state
//
// Key business rules:
//   - The wallet balance is a whole-coin integer and can never go negative
//   - Every balance change produces exactly one transaction record
//   - A partner may hold at most one live session; a login from a new device
//     supersedes the previous one
//   - Blocked partners cannot act at all
package partner
