package usecases

import (
	"context"
	"fmt"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common"
	commondto "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

type GetOrderQuery struct {
	CustomerID string
	OrderID    string
}

type GetOrderUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewGetOrderUseCase(orderRepo order.Repository, logger logger.Interface) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo, logger: logger}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, query GetOrderQuery) (*commondto.OrderDTO, error) {
	o, err := common.LoadOrder(ctx, uc.orderRepo, query.OrderID)
	if err != nil {
		return nil, err
	}
	if !o.IsParty(query.CustomerID) {
		return nil, errors.NewForbiddenError("order belongs to another customer", "order_id="+o.ID())
	}
	return commondto.ToOrderDTO(o), nil
}

type ListMyOrdersQuery struct {
	CustomerID string
}

type ListMyOrdersUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewListMyOrdersUseCase(orderRepo order.Repository, logger logger.Interface) *ListMyOrdersUseCase {
	return &ListMyOrdersUseCase{orderRepo: orderRepo, logger: logger}
}

func (uc *ListMyOrdersUseCase) Execute(ctx context.Context, query ListMyOrdersQuery) ([]*commondto.OrderDTO, error) {
	orders, err := uc.orderRepo.ListByCustomer(ctx, query.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to list customer orders", "customer_id", query.CustomerID, "error", err)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return commondto.ToOrderDTOs(orders), nil
}
