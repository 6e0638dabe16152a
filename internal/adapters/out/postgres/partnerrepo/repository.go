package partnerrepo

import (
	"context"
	"errors"

	"buyback/internal/core/domain/model/kernel"
	"buyback/internal/core/domain/model/partner"
	"buyback/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPartnerRepository implements PartnerRepository using GORM.
type GormPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPartnerRepository creates a new GORM partner repository.
func NewGormPartnerRepository(db *gorm.DB, tracker aggregateTracker) *GormPartnerRepository {
	return &GormPartnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new partner to the database with its agents and opening ledger.
func (r *GormPartnerRepository) Add(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Coins = aggregate.Wallet().Balance()
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if agents := agentDTOs(aggregate); len(agents) > 0 {
		if err := r.db.WithContext(ctx).Create(&agents).Error; err != nil {
			return err
		}
	}

	if err := r.appendTransactions(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing partner to the database. Wallet changes are
// applied as a guarded delta on the stored balance, not as an overwrite of
// the loaded snapshot: a debit that no longer fits the stored balance
// matches nothing and fails with ErrInsufficientBalance.
func (r *GormPartnerRepository) Update(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	delta := 0
	for _, tx := range aggregate.Wallet().PendingTransactions() {
		delta += tx.SignedCoins()
	}

	result := r.db.WithContext(ctx).
		Model(&PartnerDTO{}).
		Where("id = ? AND coins + ? >= 0", dto.ID, delta).
		Updates(map[string]any{
			"name":             dto.Name,
			"email":            dto.Email,
			"pincodes":         dto.Pincodes,
			"status":           dto.Status,
			"logged_in_device": dto.LoggedInDevice,
			"coins":            gorm.Expr("coins + ?", delta),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if delta < 0 {
			return partner.ErrInsufficientBalance
		}
		return errs.NewObjectNotFoundError("partner", aggregate.ID().String())
	}

	if err := r.appendTransactions(ctx, aggregate); err != nil {
		return err
	}

	if err := r.syncAgents(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a partner by ID, including its pickup agents.
func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partner", id.String())
		}
		return nil, err
	}

	return r.restore(ctx, dto)
}

// GetByPhone retrieves a partner by phone number.
func (r *GormPartnerRepository) GetByPhone(ctx context.Context, phone string) (*partner.Partner, error) {
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("phone")
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partner", phone)
		}
		return nil, err
	}

	return r.restore(ctx, dto)
}

// GetByAgentPhone retrieves the partner owning the pickup agent with the
// given phone number.
func (r *GormPartnerRepository) GetByAgentPhone(ctx context.Context, phone string) (*partner.Partner, error) {
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("phone")
	}

	var agentRow PickupAgentDTO
	if err := r.db.WithContext(ctx).First(&agentRow, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickup agent", phone)
		}
		return nil, err
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", agentRow.PartnerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partner", agentRow.PartnerID.String())
		}
		return nil, err
	}

	return r.restore(ctx, dto)
}

// GetByPincode retrieves the active partners serving the given pincode.
// The serviced pincodes live in a JSON column, so the filter runs over the
// restored aggregates rather than in SQL. Pickup agents are not loaded.
func (r *GormPartnerRepository) GetByPincode(ctx context.Context, pincode string) ([]*partner.Partner, error) {
	if pincode == "" {
		return nil, errs.NewValueIsRequiredError("pincode")
	}

	var dtos []PartnerDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", partner.Active.String()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	serving := make([]*partner.Partner, 0)
	for _, dto := range dtos {
		aggregate, err := toDomain(dto, nil)
		if err != nil {
			return nil, err
		}
		if aggregate.ServesPincode(pincode) {
			serving = append(serving, aggregate)
		}
	}

	return serving, nil
}

func (r *GormPartnerRepository) restore(ctx context.Context, dto PartnerDTO) (*partner.Partner, error) {
	var agentRows []PickupAgentDTO
	err := r.db.WithContext(ctx).
		Where("partner_id = ?", dto.ID).
		Order("name").
		Find(&agentRows).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, agentRows)
}

func (r *GormPartnerRepository) appendTransactions(ctx context.Context, aggregate *partner.Partner) error {
	rows := pendingTransactionDTOs(aggregate)
	if len(rows) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&rows).Error
}

// syncAgents reconciles the pickup_agents table with the aggregate's crew:
// removed agents are deleted, new and changed ones upserted.
func (r *GormPartnerRepository) syncAgents(ctx context.Context, aggregate *partner.Partner) error {
	rows := agentDTOs(aggregate)

	keep := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		keep = append(keep, row.ID)
	}

	stale := r.db.WithContext(ctx).Where("partner_id = ?", aggregate.ID().Bytes())
	if len(keep) > 0 {
		stale = stale.Where("id NOT IN ?", keep)
	}
	if err := stale.Delete(&PickupAgentDTO{}).Error; err != nil {
		return err
	}

	if len(rows) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "phone", "logged_in_device"}),
		}).
		Create(&rows).Error
}
