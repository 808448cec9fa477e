package mappers

import (
	"fmt"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	vo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/persistence/models"
)

// EventMapper converts events, ticket types and staff between domain and
// persistence shapes.
type EventMapper interface {
	ToModel(e *event.Event) *models.EventModel
	ToDomain(model *models.EventModel) (*event.Event, error)
	TicketTypeToModel(tt *event.TicketType) *models.TicketTypeModel
	TicketTypeToDomain(model *models.TicketTypeModel) *event.TicketType
	StaffToModel(s *event.Staff) *models.EventStaffModel
	StaffToDomain(model *models.EventStaffModel) *event.Staff
}

type EventMapperImpl struct{}

func NewEventMapper() EventMapper {
	return &EventMapperImpl{}
}

func (m *EventMapperImpl) ToModel(e *event.Event) *models.EventModel {
	d := e.Details()
	return &models.EventModel{
		ID:                e.ID(),
		OrganizerID:       e.OrganizerID(),
		Name:              d.Name,
		Address:           d.Address,
		Description:       d.Description,
		Avatar:            d.Avatar,
		StartTime:         d.StartTime.UnixMilli(),
		EndTime:           d.EndTime.UnixMilli(),
		TicketReleaseTime: d.TicketReleaseTime.UnixMilli(),
		StopSaleBefore:    d.StopSaleBefore,
		ResaleFeeRate:     e.ResaleFeeRate(),
		MaxResaleTimes:    e.MaxResaleTimes(),
		Status:            e.Status().String(),
		ArtifactURI:       e.ArtifactURI(),
		Version:           e.Version(),
		CreatedAt:         e.CreatedAt().UnixMilli(),
		UpdatedAt:         e.UpdatedAt().UnixMilli(),
	}
}

func (m *EventMapperImpl) ToDomain(model *models.EventModel) (*event.Event, error) {
	status, err := vo.NewEventStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", model.ID, err)
	}

	return event.ReconstructEvent(
		model.ID,
		model.OrganizerID,
		event.Details{
			Name:              model.Name,
			Address:           model.Address,
			Description:       model.Description,
			Avatar:            model.Avatar,
			StartTime:         fromMillis(model.StartTime),
			EndTime:           fromMillis(model.EndTime),
			TicketReleaseTime: fromMillis(model.TicketReleaseTime),
			StopSaleBefore:    model.StopSaleBefore,
		},
		event.MarketSettings{
			ResaleFeeRate:  model.ResaleFeeRate,
			MaxResaleTimes: model.MaxResaleTimes,
		},
		status,
		model.ArtifactURI,
		model.Version,
		fromMillis(model.CreatedAt),
		fromMillis(model.UpdatedAt),
	)
}

func (m *EventMapperImpl) TicketTypeToModel(tt *event.TicketType) *models.TicketTypeModel {
	return &models.TicketTypeModel{
		ID:        tt.ID(),
		EventID:   tt.EventID(),
		TierName:  tt.TierName(),
		TierPrice: tt.TierPrice(),
		Color:     tt.Color(),
		CreatedAt: tt.CreatedAt().UnixMilli(),
		UpdatedAt: tt.UpdatedAt().UnixMilli(),
	}
}

func (m *EventMapperImpl) TicketTypeToDomain(model *models.TicketTypeModel) *event.TicketType {
	return event.ReconstructTicketType(
		model.ID,
		model.EventID,
		model.TierName,
		model.TierPrice,
		model.Color,
		fromMillis(model.CreatedAt),
		fromMillis(model.UpdatedAt),
	)
}

func (m *EventMapperImpl) StaffToModel(s *event.Staff) *models.EventStaffModel {
	return &models.EventStaffModel{
		ID:         s.ID(),
		EventID:    s.EventID(),
		StaffID:    s.StaffID(),
		OperatorID: s.OperatorID(),
		CreatedAt:  s.CreatedAt().UnixMilli(),
	}
}

func (m *EventMapperImpl) StaffToDomain(model *models.EventStaffModel) *event.Staff {
	return event.ReconstructStaff(model.ID, model.EventID, model.StaffID, model.OperatorID, fromMillis(model.CreatedAt))
}
