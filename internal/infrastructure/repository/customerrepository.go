package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/customer"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/persistence/mappers"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/persistence/models"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/db"
	apperrors "github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
)

type CustomerRepository struct {
	db     *gorm.DB
	mapper mappers.CustomerMapper
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		db:     db,
		mapper: mappers.NewCustomerMapper(),
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(r.mapper.ToModel(c)).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConstraintViolationError("wallet address already registered", "wallet="+c.WalletAddress())
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.CustomerModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "wallet_address", "created_at").
		Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) get(ctx context.Context, column, value string) (*customer.Customer, error) {
	var model models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(column+" = ?", value).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get customer by %s: %w", column, err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *CustomerRepository) GetByID(ctx context.Context, customerID string) (*customer.Customer, error) {
	return r.get(ctx, "id", customerID)
}

func (r *CustomerRepository) GetByWallet(ctx context.Context, walletAddress string) (*customer.Customer, error) {
	return r.get(ctx, "wallet_address", walletAddress)
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	return r.get(ctx, "email", strings.ToLower(strings.TrimSpace(email)))
}
