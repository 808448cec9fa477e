package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/event/dto"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/customer"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/event"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

type AddStaffCommand struct {
	OrganizerID string
	EventID     string
	Email       string
}

type AddStaffUseCase struct {
	eventRepo    event.Repository
	staffRepo    event.StaffRepository
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewAddStaffUseCase(
	eventRepo event.Repository,
	staffRepo event.StaffRepository,
	customerRepo customer.Repository,
	logger logger.Interface,
) *AddStaffUseCase {
	return &AddStaffUseCase{
		eventRepo:    eventRepo,
		staffRepo:    staffRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *AddStaffUseCase) Execute(ctx context.Context, cmd AddStaffCommand) (*dto.StaffDTO, error) {
	e, err := common.LoadOwnedEvent(ctx, uc.eventRepo, cmd.OrganizerID, cmd.EventID)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	member, err := uc.customerRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up staff member: %w", err)
	}
	if member == nil {
		return nil, errors.NewNotFoundError("no customer with this email", "email="+email)
	}
	if err := member.AssertActive(); err != nil {
		return nil, err
	}

	staff, err := event.NewStaff(e.ID(), member.ID(), cmd.OrganizerID)
	if err != nil {
		return nil, err
	}
	if err := uc.staffRepo.Create(ctx, staff); err != nil {
		if errors.IsConstraintViolationError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to add event staff", "event_id", e.ID(), "staff_id", member.ID(), "error", err)
		return nil, fmt.Errorf("failed to add staff: %w", err)
	}

	uc.logger.Infow("event staff added", "event_id", e.ID(), "staff_id", member.ID(), "operator_id", cmd.OrganizerID)
	return &dto.StaffDTO{
		StaffID:    member.ID(),
		Email:      member.Email(),
		Wallet:     member.WalletAddress(),
		OperatorID: staff.OperatorID(),
		CreatedAt:  staff.CreatedAt(),
	}, nil
}

type ListStaffQuery struct {
	OrganizerID string
	EventID     string
}

type ListStaffUseCase struct {
	eventRepo    event.Repository
	staffRepo    event.StaffRepository
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewListStaffUseCase(
	eventRepo event.Repository,
	staffRepo event.StaffRepository,
	customerRepo customer.Repository,
	logger logger.Interface,
) *ListStaffUseCase {
	return &ListStaffUseCase{
		eventRepo:    eventRepo,
		staffRepo:    staffRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *ListStaffUseCase) Execute(ctx context.Context, query ListStaffQuery) ([]*dto.StaffDTO, error) {
	e, err := common.LoadOwnedEvent(ctx, uc.eventRepo, query.OrganizerID, query.EventID)
	if err != nil {
		return nil, err
	}

	members, err := uc.staffRepo.ListByEvent(ctx, e.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	result := make([]*dto.StaffDTO, 0, len(members))
	for _, m := range members {
		item := &dto.StaffDTO{
			StaffID:    m.StaffID(),
			OperatorID: m.OperatorID(),
			CreatedAt:  m.CreatedAt(),
		}
		if c, err := uc.customerRepo.GetByID(ctx, m.StaffID()); err == nil && c != nil {
			item.Email = c.Email()
			item.Wallet = c.WalletAddress()
		}
		result = append(result, item)
	}
	return result, nil
}

type RemoveStaffCommand struct {
	OrganizerID string
	EventID     string
	StaffID     string
}

type RemoveStaffUseCase struct {
	eventRepo event.Repository
	staffRepo event.StaffRepository
	logger    logger.Interface
}

func NewRemoveStaffUseCase(eventRepo event.Repository, staffRepo event.StaffRepository, logger logger.Interface) *RemoveStaffUseCase {
	return &RemoveStaffUseCase{eventRepo: eventRepo, staffRepo: staffRepo, logger: logger}
}

func (uc *RemoveStaffUseCase) Execute(ctx context.Context, cmd RemoveStaffCommand) error {
	e, err := common.LoadOwnedEvent(ctx, uc.eventRepo, cmd.OrganizerID, cmd.EventID)
	if err != nil {
		return err
	}

	exists, err := uc.staffRepo.Exists(ctx, e.ID(), cmd.StaffID)
	if err != nil {
		return fmt.Errorf("failed to check staff: %w", err)
	}
	if !exists {
		return errors.NewNotFoundError("staff member not registered for event", "staff_id="+cmd.StaffID)
	}

	if err := uc.staffRepo.Delete(ctx, e.ID(), cmd.StaffID); err != nil {
		uc.logger.Errorw("failed to remove event staff", "event_id", e.ID(), "staff_id", cmd.StaffID, "error", err)
		return fmt.Errorf("failed to remove staff: %w", err)
	}

	uc.logger.Infow("event staff removed", "event_id", e.ID(), "staff_id", cmd.StaffID)
	return nil
}
