package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	vo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/persistence/mappers"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/persistence/models"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/db"
	apperrors "github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
)

const seatInsertBatchSize = 500

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", ticketID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// CompareAndSwap writes every column of t guarded by WHERE status = from.
func (r *TicketRepository) CompareAndSwap(ctx context.Context, t *ticket.Ticket, from vo.TicketStatus) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.TicketModel{}).
		Where("id = ? AND status = ?", model.ID, from.String()).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConstraintViolationError(
				fmt.Sprintf("seat (%d, %d) already exists in ticket type %s", model.SeatRow, model.SeatColumn, model.TicketTypeID),
				"ticket_id="+model.ID,
			)
		}
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewInvalidTransitionError(
			fmt.Sprintf("ticket is no longer %s", from),
			"ticket_id="+model.ID,
		)
	}
	return nil
}

func (r *TicketRepository) BulkInsertIgnoringConflicts(ctx context.Context, tickets []*ticket.Ticket) (int64, error) {
	if len(tickets) == 0 {
		return 0, nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(r.mapper.ToModels(tickets), seatInsertBatchSize)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to insert seats: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *TicketRepository) UpdateSaleWindow(ctx context.Context, eventID string, start, end time.Time) error {
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Model(&models.TicketModel{}).
		Scopes(db.ByEvent(eventID)).
		Updates(map[string]interface{}{
			"sale_start_time": start.UnixMilli(),
			"sale_end_time":   end.UnixMilli(),
			"version":         gorm.Expr("version + 1"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update sale window: %w", err)
	}
	return nil
}

func (r *TicketRepository) list(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]*ticket.Ticket, error) {
	var list []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Scopes(scopes...).Order("seat_row ASC, seat_column ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return r.mapper.ToDomainList(list)
}

func (r *TicketRepository) ListByEvent(ctx context.Context, eventID string, statuses ...vo.TicketStatus) ([]*ticket.Ticket, error) {
	return r.list(ctx, db.ByEvent(eventID), db.StatusIn(statuses...))
}

func (r *TicketRepository) ListByOwner(ctx context.Context, ownerID string, statuses ...vo.TicketStatus) ([]*ticket.Ticket, error) {
	return r.list(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("owner_id = ?", ownerID)
	}, db.StatusIn(statuses...))
}

func (r *TicketRepository) count(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) (int64, error) {
	var n int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TicketModel{}).Scopes(scopes...).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return n, nil
}

func (r *TicketRepository) CountByEvent(ctx context.Context, eventID string, statuses ...vo.TicketStatus) (int64, error) {
	return r.count(ctx, db.ByEvent(eventID), db.StatusIn(statuses...))
}

func (r *TicketRepository) CountByTicketType(ctx context.Context, typeID string, statuses ...vo.TicketStatus) (int64, error) {
	return r.count(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("ticket_type_id = ?", typeID)
	}, db.StatusIn(statuses...))
}

func (r *TicketRepository) MaxCoordinates(ctx context.Context, eventID string) (int, int, error) {
	var row struct {
		MaxRow    int
		MaxColumn int
	}
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.TicketModel{}).
		Select("COALESCE(MAX(seat_row), 0) AS max_row, COALESCE(MAX(seat_column), 0) AS max_column").
		Scopes(db.ByEvent(eventID)).
		Scan(&row).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get seat map bounds: %w", err)
	}
	return row.MaxRow, row.MaxColumn, nil
}

func (r *TicketRepository) DeleteByTicketType(ctx context.Context, typeID string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("ticket_type_id = ?", typeID).Delete(&models.TicketModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete tickets of type: %w", err)
	}
	return nil
}

func (r *TicketRepository) DeleteByEvent(ctx context.Context, eventID string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Scopes(db.ByEvent(eventID)).Delete(&models.TicketModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete tickets of event: %w", err)
	}
	return nil
}
