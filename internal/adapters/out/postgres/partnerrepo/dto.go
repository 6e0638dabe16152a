// Package partnerrepo provides data transfer objects and mapping functions
// for partner persistence, including the coin wallet and pickup agents.
package partnerrepo

import (
	"time"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

// PartnerDTO represents the database structure for persisting partner
// aggregates. The wallet balance lives on the row as a plain integer; its
// history is the wallet_transactions table.
type PartnerDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	Phone          string   `gorm:"uniqueIndex"`
	Email          string
	Pincodes       []string `gorm:"serializer:json"`
	Status         string
	LoggedInDevice string
	Coins          int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the database table name for partner entities.
func (PartnerDTO) TableName() string {
	return "partners"
}

// PickupAgentDTO represents a pickup agent row owned by a partner.
type PickupAgentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	PartnerID      uuid.UUID `gorm:"type:uuid;index"`
	Name           string
	Phone          string `gorm:"uniqueIndex"`
	LoggedInDevice string
}

// TableName specifies the database table name for pickup agent entities.
func (PickupAgentDTO) TableName() string {
	return "pickup_agents"
}

// WalletTransactionDTO is one append-only line of a partner's coin ledger.
type WalletTransactionDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	PartnerPhone string `gorm:"index"`
	Type         string
	Coins        int
	OrderID      string
	PaymentID    string
	Message      string
	CreatedAt    time.Time
}

// TableName specifies the database table name for wallet ledger entries.
func (WalletTransactionDTO) TableName() string {
	return "wallet_transactions"
}

// fromDomain converts a partner domain aggregate to its database representation.
// The Coins column is intentionally left at zero: balance changes are applied
// as guarded deltas by the repository, never as blind overwrites.
func fromDomain(aggregate *partner.Partner) PartnerDTO {
	return PartnerDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		Phone:          aggregate.Phone(),
		Email:          aggregate.Email(),
		Pincodes:       aggregate.Pincodes(),
		Status:         aggregate.Status().String(),
		LoggedInDevice: aggregate.LoggedInDevice(),
	}
}

// agentDTOs converts the aggregate's pickup agents to rows.
func agentDTOs(aggregate *partner.Partner) []PickupAgentDTO {
	agents := aggregate.Agents()
	rows := make([]PickupAgentDTO, 0, len(agents))
	for _, agent := range agents {
		rows = append(rows, PickupAgentDTO{
			ID:             agent.ID().Bytes(),
			PartnerID:      aggregate.ID().Bytes(),
			Name:           agent.Name(),
			Phone:          agent.Phone(),
			LoggedInDevice: agent.LoggedInDevice(),
		})
	}
	return rows
}

// pendingTransactionDTOs converts the wallet's unsaved ledger entries to rows.
func pendingTransactionDTOs(aggregate *partner.Partner) []WalletTransactionDTO {
	pending := aggregate.Wallet().PendingTransactions()
	if len(pending) == 0 {
		return nil
	}

	rows := make([]WalletTransactionDTO, 0, len(pending))
	for _, tx := range pending {
		rows = append(rows, WalletTransactionDTO{
			PartnerPhone: aggregate.Phone(),
			Type:         string(tx.Type),
			Coins:        tx.Coins,
			OrderID:      tx.OrderID,
			PaymentID:    tx.PaymentID,
			Message:      tx.Message,
			CreatedAt:    tx.Timestamp,
		})
	}
	return rows
}

// toDomain converts a database DTO with its agent rows to a partner aggregate.
func toDomain(dto PartnerDTO, agentRows []PickupAgentDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := partner.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	agents := make([]*partner.PickupAgent, 0, len(agentRows))
	for _, row := range agentRows {
		agentID, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		agent, agentErr := partner.RestorePickupAgent(agentID, row.Name, row.Phone, row.LoggedInDevice)
		if agentErr != nil {
			return nil, agentErr
		}
		agents = append(agents, agent)
	}

	return partner.RestorePartner(
		id,
		dto.Name,
		dto.Phone,
		dto.Email,
		dto.Pincodes,
		status,
		dto.LoggedInDevice,
		dto.Coins,
		agents,
	)
}
