package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/persistence/mappers"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/persistence/models"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/db"
	apperrors "github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
)

type EventStaffRepository struct {
	db     *gorm.DB
	mapper mappers.EventMapper
}

func NewEventStaffRepository(db *gorm.DB) *EventStaffRepository {
	return &EventStaffRepository{
		db:     db,
		mapper: mappers.NewEventMapper(),
	}
}

func (r *EventStaffRepository) Create(ctx context.Context, staff *event.Staff) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(r.mapper.StaffToModel(staff)).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConstraintViolationError(
				"staff member is already registered for this event",
				fmt.Sprintf("event_id=%s staff_id=%s", staff.EventID(), staff.StaffID()),
			)
		}
		return fmt.Errorf("failed to add event staff: %w", err)
	}
	return nil
}

func (r *EventStaffRepository) Delete(ctx context.Context, eventID, staffID string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Scopes(db.ByEvent(eventID)).
		Where("staff_id = ?", staffID).
		Delete(&models.EventStaffModel{}).Error; err != nil {
		return fmt.Errorf("failed to remove event staff: %w", err)
	}
	return nil
}

func (r *EventStaffRepository) DeleteByEvent(ctx context.Context, eventID string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Scopes(db.ByEvent(eventID)).Delete(&models.EventStaffModel{}).Error; err != nil {
		return fmt.Errorf("failed to remove staff of event: %w", err)
	}
	return nil
}

func (r *EventStaffRepository) Exists(ctx context.Context, eventID, staffID string) (bool, error) {
	var n int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.EventStaffModel{}).
		Scopes(db.ByEvent(eventID)).
		Where("staff_id = ?", staffID).
		Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to check event staff: %w", err)
	}
	return n > 0, nil
}

func (r *EventStaffRepository) ListByEvent(ctx context.Context, eventID string) ([]*event.Staff, error) {
	var list []models.EventStaffModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Scopes(db.ByEvent(eventID)).Order("created_at ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list event staff: %w", err)
	}

	staff := make([]*event.Staff, 0, len(list))
	for i := range list {
		staff = append(staff, r.mapper.StaffToDomain(&list[i]))
	}
	return staff, nil
}
