package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order"
	vo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/persistence/mappers"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/persistence/models"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/db"
	apperrors "github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
)

type OrderRepository struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		db:     db,
		mapper: mappers.NewOrderMapper(),
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	model, err := r.mapper.ToModel(o)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID string) (*order.Order, error) {
	var model models.OrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", orderID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *OrderRepository) CompareAndSwap(ctx context.Context, o *order.Order, from vo.OrderStatus) error {
	model, err := r.mapper.ToModel(o)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", model.ID, from.String()).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) && model.TxHash != nil {
			return apperrors.NewConstraintViolationError(
				"transaction hash already settled another order",
				"tx_hash="+*model.TxHash,
			)
		}
		return fmt.Errorf("failed to update order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewInvalidTransitionError(
			fmt.Sprintf("order is no longer %s", from),
			"order_id="+model.ID,
		)
	}
	return nil
}

func (r *OrderRepository) find(ctx context.Context, query func(*gorm.DB) *gorm.DB) ([]*order.Order, error) {
	var list []models.OrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := query(tx).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*order.Order, 0, len(list))
	for i := range list {
		o, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID string) ([]*order.Order, error) {
	return r.find(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("buyer_id = ? OR seller_id = ?", customerID, customerID).
			Order("created_at DESC")
	})
}

func (r *OrderRepository) ListStaleOpen(ctx context.Context, createdBefore time.Time, limit int) ([]*order.Order, error) {
	return r.find(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Scopes(db.StatusIn(vo.OrderStatusOpen)).
			Where("created_at < ?", createdBefore.UnixMilli()).
			Order("created_at ASC").
			Limit(limit)
	})
}

func (r *OrderRepository) DeleteByEvent(ctx context.Context, eventID string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Scopes(db.ByEvent(eventID)).Delete(&models.OrderModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete orders of event: %w", err)
	}
	return nil
}
