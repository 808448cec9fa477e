package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order"
	vo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/persistence/models"
)

type OrderMapper interface {
	ToModel(o *order.Order) (*models.OrderModel, error)
	ToDomain(model *models.OrderModel) (*order.Order, error)
}

type OrderMapperImpl struct{}

func NewOrderMapper() OrderMapper {
	return &OrderMapperImpl{}
}

func (m *OrderMapperImpl) ToModel(o *order.Order) (*models.OrderModel, error) {
	s := o.Snapshot()
	model := &models.OrderModel{
		ID:           s.ID,
		TicketID:     s.TicketID,
		EventID:      s.EventID,
		BuyerID:      s.BuyerID,
		SellerID:     s.SellerID,
		Price:        s.Price,
		Fee:          s.Fee,
		Status:       s.Status.String(),
		TxHash:       s.TxHash,
		PaidAt:       toMillisPtr(s.PaidAt),
		TransferedAt: toMillisPtr(s.TransferedAt),
		AbandonedAt:  toMillisPtr(s.AbandonedAt),
		Version:      s.Version,
		CreatedAt:    s.CreatedAt.UnixMilli(),
		UpdatedAt:    s.UpdatedAt.UnixMilli(),
	}

	if s.Settlement != nil {
		raw, err := json.Marshal(s.Settlement)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal settlement of order %s: %w", s.ID, err)
		}
		model.Settlement = datatypes.JSON(raw)
	}
	return model, nil
}

func (m *OrderMapperImpl) ToDomain(model *models.OrderModel) (*order.Order, error) {
	status, err := vo.NewOrderStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", model.ID, err)
	}

	var settlement *order.Settlement
	if len(model.Settlement) > 0 && string(model.Settlement) != "null" {
		settlement = &order.Settlement{}
		if err := json.Unmarshal(model.Settlement, settlement); err != nil {
			return nil, fmt.Errorf("failed to unmarshal settlement of order %s: %w", model.ID, err)
		}
	}

	return order.ReconstructOrder(order.Snapshot{
		ID:           model.ID,
		TicketID:     model.TicketID,
		EventID:      model.EventID,
		BuyerID:      model.BuyerID,
		SellerID:     model.SellerID,
		Price:        model.Price,
		Fee:          model.Fee,
		Status:       status,
		TxHash:       model.TxHash,
		Settlement:   settlement,
		PaidAt:       fromMillisPtr(model.PaidAt),
		TransferedAt: fromMillisPtr(model.TransferedAt),
		AbandonedAt:  fromMillisPtr(model.AbandonedAt),
		Version:      model.Version,
		CreatedAt:    fromMillis(model.CreatedAt),
		UpdatedAt:    fromMillis(model.UpdatedAt),
	})
}
