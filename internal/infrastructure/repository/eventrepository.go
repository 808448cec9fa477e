package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	vo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/persistence/mappers"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/persistence/models"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/db"
)

type EventRepository struct {
	db     *gorm.DB
	mapper mappers.EventMapper
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{
		db:     db,
		mapper: mappers.NewEventMapper(),
	}
}

func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(r.mapper.ToModel(e)).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *EventRepository) Update(ctx context.Context, e *event.Event) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.EventModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update event: %w", result.Error)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, eventID string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id = ?", eventID).Delete(&models.EventModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, eventID string) (*event.Event, error) {
	var model models.EventModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", eventID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *EventRepository) find(ctx context.Context, query func(*gorm.DB) *gorm.DB) ([]*event.Event, error) {
	var list []models.EventModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := query(tx).Order("start_time ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]*event.Event, 0, len(list))
	for i := range list {
		e, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func (r *EventRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]*event.Event, error) {
	return r.find(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("organizer_id = ?", organizerID)
	})
}

func (r *EventRepository) ListByStatus(ctx context.Context, statuses ...vo.EventStatus) ([]*event.Event, error) {
	return r.find(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Scopes(db.StatusIn(statuses...))
	})
}

type TicketTypeRepository struct {
	db     *gorm.DB
	mapper mappers.EventMapper
}

func NewTicketTypeRepository(db *gorm.DB) *TicketTypeRepository {
	return &TicketTypeRepository{
		db:     db,
		mapper: mappers.NewEventMapper(),
	}
}

func (r *TicketTypeRepository) Create(ctx context.Context, tt *event.TicketType) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(r.mapper.TicketTypeToModel(tt)).Error; err != nil {
		return fmt.Errorf("failed to create ticket type: %w", err)
	}
	return nil
}

func (r *TicketTypeRepository) Update(ctx context.Context, tt *event.TicketType) error {
	model := r.mapper.TicketTypeToModel(tt)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TicketTypeModel{}).
		Where("id = ?", model.ID).
		Select("tier_name", "tier_price", "color", "updated_at").
		Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update ticket type: %w", err)
	}
	return nil
}

func (r *TicketTypeRepository) Delete(ctx context.Context, typeID string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id = ?", typeID).Delete(&models.TicketTypeModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket type: %w", err)
	}
	return nil
}

func (r *TicketTypeRepository) DeleteByEvent(ctx context.Context, eventID string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Scopes(db.ByEvent(eventID)).Delete(&models.TicketTypeModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket types of event: %w", err)
	}
	return nil
}

func (r *TicketTypeRepository) GetByID(ctx context.Context, typeID string) (*event.TicketType, error) {
	var model models.TicketTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", typeID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket type: %w", err)
	}
	return r.mapper.TicketTypeToDomain(&model), nil
}

func (r *TicketTypeRepository) ListByEvent(ctx context.Context, eventID string) ([]*event.TicketType, error) {
	var list []models.TicketTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Scopes(db.ByEvent(eventID)).Order("created_at ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket types: %w", err)
	}

	types := make([]*event.TicketType, 0, len(list))
	for i := range list {
		types = append(types, r.mapper.TicketTypeToDomain(&list[i]))
	}
	return types, nil
}
