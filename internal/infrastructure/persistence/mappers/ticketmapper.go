package mappers

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	vo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between seats and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ToModels(tickets []*ticket.Ticket) []*models.TicketModel
	ToDomainList(list []models.TicketModel) ([]*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	s := t.Snapshot()
	return &models.TicketModel{
		ID:            s.ID,
		EventID:       s.EventID,
		TicketTypeID:  s.TicketTypeID,
		SeatRow:       s.RowNumber,
		SeatColumn:    s.ColumnNumber,
		Name:          s.Name,
		InitialPrice:  s.InitialPrice,
		PreviousPrice: s.PreviousPrice,
		Price:         s.Price,
		SaleStartTime: s.SaleStartTime.UnixMilli(),
		SaleEndTime:   s.SaleEndTime.UnixMilli(),
		ResaleTimes:   s.ResaleTimes,
		OwnerID:       s.OwnerID,
		Status:        s.Status.String(),
		LastOrderID:   s.LastOrderID,
		StaffID:       s.StaffID,
		CheckInAt:     toMillisPtr(s.CheckInAt),
		CheckInTxRef:  s.CheckInTxRef,
		Version:       s.Version,
		CreatedAt:     s.CreatedAt.UnixMilli(),
		UpdatedAt:     s.UpdatedAt.UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", model.ID, err)
	}

	return ticket.ReconstructTicket(ticket.Snapshot{
		ID:            model.ID,
		EventID:       model.EventID,
		TicketTypeID:  model.TicketTypeID,
		RowNumber:     model.SeatRow,
		ColumnNumber:  model.SeatColumn,
		Name:          model.Name,
		InitialPrice:  model.InitialPrice,
		PreviousPrice: model.PreviousPrice,
		Price:         model.Price,
		SaleStartTime: fromMillis(model.SaleStartTime),
		SaleEndTime:   fromMillis(model.SaleEndTime),
		ResaleTimes:   model.ResaleTimes,
		OwnerID:       model.OwnerID,
		Status:        status,
		LastOrderID:   model.LastOrderID,
		StaffID:       model.StaffID,
		CheckInAt:     fromMillisPtr(model.CheckInAt),
		CheckInTxRef:  model.CheckInTxRef,
		Version:       model.Version,
		CreatedAt:     fromMillis(model.CreatedAt),
		UpdatedAt:     fromMillis(model.UpdatedAt),
	})
}

func (m *TicketMapperImpl) ToDomainList(list []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(list))
	for i := range list {
		t, err := m.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (m *TicketMapperImpl) ToModels(tickets []*ticket.Ticket) []*models.TicketModel {
	return lo.Map(tickets, func(t *ticket.Ticket, _ int) *models.TicketModel {
		return m.ToModel(t)
	})
}
