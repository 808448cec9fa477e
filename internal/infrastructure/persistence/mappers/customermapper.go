package mappers

import (
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/customer"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/persistence/models"
)

type CustomerMapper interface {
	ToModel(c *customer.Customer) *models.CustomerModel
	ToDomain(model *models.CustomerModel) (*customer.Customer, error)
}

type CustomerMapperImpl struct{}

func NewCustomerMapper() CustomerMapper {
	return &CustomerMapperImpl{}
}

func (m *CustomerMapperImpl) ToModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:                    c.ID(),
		Email:                 c.Email(),
		WalletAddress:         c.WalletAddress(),
		Status:                string(c.Status()),
		IsOrganizer:           c.IsOrganizer(),
		DefaultResaleFeeRate:  c.Defaults().ResaleFeeRate,
		DefaultMaxResaleTimes: c.Defaults().MaxResaleTimes,
		CreatedAt:             c.CreatedAt().UnixMilli(),
		UpdatedAt:             c.UpdatedAt().UnixMilli(),
	}
}

func (m *CustomerMapperImpl) ToDomain(model *models.CustomerModel) (*customer.Customer, error) {
	return customer.ReconstructCustomer(
		model.ID,
		model.Email,
		model.WalletAddress,
		customer.Status(model.Status),
		model.IsOrganizer,
		customer.OrganizerDefaults{
			ResaleFeeRate:  model.DefaultResaleFeeRate,
			MaxResaleTimes: model.DefaultMaxResaleTimes,
		},
		fromMillis(model.CreatedAt),
		fromMillis(model.UpdatedAt),
	)
}
