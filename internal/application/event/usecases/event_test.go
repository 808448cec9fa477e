package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/testutil"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/shared/events"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket"
	tvo "github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/ticket/valueobjects"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

type fixture struct {
	events    *testutil.EventRepository
	types     *testutil.TicketTypeRepository
	staff     *testutil.StaffRepository
	tickets   *testutil.TicketRepository
	orders    *testutil.OrderRepository
	customers *testutil.CustomerRepository
	recorder  *testutil.EventRecorder
	log       logger.Interface
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		events:    testutil.NewEventRepository(),
		types:     testutil.NewTicketTypeRepository(),
		staff:     testutil.NewStaffRepository(),
		tickets:   testutil.NewTicketRepository(),
		orders:    testutil.NewOrderRepository(),
		customers: testutil.NewCustomerRepository(),
		recorder:  &testutil.EventRecorder{},
		log:       logger.NewNopLogger(),
	}
	seedOrganizer(t, f.customers)
	return f
}

func (f *fixture) createDraft(t *testing.T) string {
	t.Helper()
	uc := NewCreateEventUseCase(f.events, f.customers, f.log)
	result, err := uc.Execute(context.Background(), CreateEventCommand{OrganizerID: "organizer-1", EventFields: validFields()})
	require.NoError(t, err)
	return result.ID
}

func TestCreateEventUseCase(t *testing.T) {
	t.Run("applies organizer defaults", func(t *testing.T) {
		f := newFixture(t)
		uc := NewCreateEventUseCase(f.events, f.customers, f.log)

		result, err := uc.Execute(context.Background(), CreateEventCommand{OrganizerID: "organizer-1", EventFields: validFields()})
		require.NoError(t, err)
		assert.Equal(t, "DRAFT", result.Status)
		assert.Equal(t, "DRAFT", result.Stage)
		assert.True(t, result.ResaleFeeRate.Equal(decimal.RequireFromString("0.1")))
		assert.Equal(t, 3, result.MaxResaleTimes)
	})

	t.Run("explicit settings override defaults", func(t *testing.T) {
		f := newFixture(t)
		uc := NewCreateEventUseCase(f.events, f.customers, f.log)
		fields := validFields()
		rate := decimal.RequireFromString("0.02")
		maxTimes := 0
		fields.ResaleFeeRate = &rate
		fields.MaxResaleTimes = &maxTimes

		result, err := uc.Execute(context.Background(), CreateEventCommand{OrganizerID: "organizer-1", EventFields: fields})
		require.NoError(t, err)
		assert.True(t, result.ResaleFeeRate.Equal(rate))
		assert.Equal(t, 0, result.MaxResaleTimes)
	})

	t.Run("non organizers are forbidden", func(t *testing.T) {
		f := newFixture(t)
		fan := seedCustomer(t, f.customers, "wallet-fan", "fan@example.com")
		uc := NewCreateEventUseCase(f.events, f.customers, f.log)

		_, err := uc.Execute(context.Background(), CreateEventCommand{OrganizerID: fan.ID(), EventFields: validFields()})
		assert.True(t, errors.IsForbiddenError(err))
	})
}

func TestUpdateEvent_SeatsFollowNewSchedule(t *testing.T) {
	f := newFixture(t)
	eventID := f.createDraft(t)
	ctx := context.Background()

	fields := validFields()
	seat, err := ticket.NewSeat(eventID, "type-1", ticket.SeatSpec{Row: 1, Column: 1, Status: tvo.StatusNew},
		decimal.NewFromInt(10), fields.TicketReleaseTime, fields.EndTime.Add(-30*time.Minute))
	require.NoError(t, err)
	f.tickets.Put(seat)

	fields.TicketReleaseTime = fields.TicketReleaseTime.Add(2 * time.Hour)
	fields.EndTime = fields.EndTime.Add(3 * time.Hour)
	fields.StopSaleBefore = 60

	update := NewUpdateEventUseCase(f.events, f.tickets, testutil.Transactor{}, f.log)
	_, err = update.Execute(ctx, UpdateEventCommand{OrganizerID: "organizer-1", EventID: eventID, EventFields: fields})
	require.NoError(t, err)

	stored, err := f.tickets.GetByID(ctx, seat.ID())
	require.NoError(t, err)
	assert.True(t, stored.SaleStartTime().Equal(fields.TicketReleaseTime))
	assert.True(t, stored.SaleEndTime().Equal(fields.EndTime.Add(-time.Hour)))
}

func TestEventLifecycleUseCases(t *testing.T) {
	f := newFixture(t)
	eventID := f.createDraft(t)
	ctx := context.Background()

	publisher := &mockArtifactPublisher{}
	preview := NewPreviewEventUseCase(f.events, publisher, f.log)
	publish := NewPublishEventUseCase(f.events, f.recorder, f.log)
	disable := NewDisableEventUseCase(f.events, f.log)
	update := NewUpdateEventUseCase(f.events, f.tickets, testutil.Transactor{}, f.log)

	_, err := publish.Execute(ctx, PublishEventCommand{OrganizerID: "organizer-1", EventID: eventID})
	assert.True(t, errors.IsInvalidTransitionError(err))

	result, err := preview.Execute(ctx, PreviewEventCommand{OrganizerID: "organizer-1", EventID: eventID})
	require.NoError(t, err)
	assert.Equal(t, "PREVIEW", result.Status)
	assert.Equal(t, "ipfs://metadata", result.ArtifactURI)

	_, err = update.Execute(ctx, UpdateEventCommand{OrganizerID: "organizer-1", EventID: eventID, EventFields: validFields()})
	assert.True(t, errors.IsInvalidTransitionError(err))

	result, err = publish.Execute(ctx, PublishEventCommand{OrganizerID: "organizer-1", EventID: eventID})
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", result.Status)
	assert.Equal(t, "PREVIEW", result.Stage)
	assert.Equal(t, 1, f.recorder.Count(func(e events.DomainEvent) bool {
		_, ok := e.(events.EventPublished)
		return ok
	}))

	_, err = preview.Execute(ctx, PreviewEventCommand{OrganizerID: "organizer-1", EventID: eventID})
	assert.True(t, errors.IsInvalidTransitionError(err))
	assert.Equal(t, 1, publisher.calls)

	result, err = disable.Execute(ctx, DisableEventCommand{OrganizerID: "organizer-1", EventID: eventID})
	require.NoError(t, err)
	assert.Equal(t, "DISABLED", result.Stage)
}

func TestPreviewEventUseCase_PublisherFailure(t *testing.T) {
	f := newFixture(t)
	eventID := f.createDraft(t)
	publisher := &mockArtifactPublisher{
		PublishEventMetadataFunc: func(ctx context.Context, metadata EventMetadata) (string, error) {
			return "", fmt.Errorf("gateway timeout")
		},
	}

	_, err := NewPreviewEventUseCase(f.events, publisher, f.log).
		Execute(context.Background(), PreviewEventCommand{OrganizerID: "organizer-1", EventID: eventID})
	assert.True(t, errors.IsExternalDependencyError(err))

	e, _ := f.events.GetByID(context.Background(), eventID)
	assert.Equal(t, "DRAFT", e.Status().String())
}

func TestOtherOrganizerIsForbidden(t *testing.T) {
	f := newFixture(t)
	eventID := f.createDraft(t)

	_, err := NewGetEventUseCase(f.events, f.log).Execute(context.Background(), GetEventQuery{OrganizerID: "someone-else", EventID: eventID})
	assert.True(t, errors.IsForbiddenError(err))

	_, err = NewGetEventUseCase(f.events, f.log).Execute(context.Background(), GetEventQuery{OrganizerID: "organizer-1", EventID: "missing"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteEventUseCase(t *testing.T) {
	newUseCase := func(f *fixture) *DeleteEventUseCase {
		return NewDeleteEventUseCase(f.events, f.types, f.staff, f.tickets, f.orders, testutil.Transactor{}, f.log)
	}

	t.Run("cascades a clean draft", func(t *testing.T) {
		f := newFixture(t)
		eventID := f.createDraft(t)
		seat, err := ticket.NewSeat(eventID, "type-1", ticket.SeatSpec{Row: 1, Column: 1, Status: tvo.StatusNew}, decimal.NewFromInt(10), validFields().TicketReleaseTime, validFields().EndTime)
		require.NoError(t, err)
		f.tickets.Put(seat)

		require.NoError(t, newUseCase(f).Execute(context.Background(), DeleteEventCommand{OrganizerID: "organizer-1", EventID: eventID}))

		e, _ := f.events.GetByID(context.Background(), eventID)
		assert.Nil(t, e)
		n, _ := f.tickets.CountByEvent(context.Background(), eventID)
		assert.Zero(t, n)
	})

	t.Run("refuses when a seat entered the market", func(t *testing.T) {
		f := newFixture(t)
		eventID := f.createDraft(t)
		seat, err := ticket.NewSeat(eventID, "type-1", ticket.SeatSpec{Row: 1, Column: 1, Status: tvo.StatusNew}, decimal.NewFromInt(10), validFields().TicketReleaseTime, validFields().EndTime)
		require.NoError(t, err)
		_, err = seat.Reserve("buyer")
		require.NoError(t, err)
		f.tickets.Put(seat)

		err = newUseCase(f).Execute(context.Background(), DeleteEventCommand{OrganizerID: "organizer-1", EventID: eventID})
		assert.True(t, errors.IsConstraintViolationError(err))
	})
}

func TestStaffUseCases(t *testing.T) {
	f := newFixture(t)
	eventID := f.createDraft(t)
	member := seedCustomer(t, f.customers, "wallet-staff", "staff@example.com")
	ctx := context.Background()

	add := NewAddStaffUseCase(f.events, f.staff, f.customers, f.log)
	result, err := add.Execute(ctx, AddStaffCommand{OrganizerID: "organizer-1", EventID: eventID, Email: " Staff@Example.com "})
	require.NoError(t, err)
	assert.Equal(t, member.ID(), result.StaffID)
	assert.Equal(t, "organizer-1", result.OperatorID)

	_, err = add.Execute(ctx, AddStaffCommand{OrganizerID: "organizer-1", EventID: eventID, Email: "staff@example.com"})
	assert.True(t, errors.IsConstraintViolationError(err))

	_, err = add.Execute(ctx, AddStaffCommand{OrganizerID: "organizer-1", EventID: eventID, Email: "nobody@example.com"})
	assert.True(t, errors.IsNotFoundError(err))

	list, err := NewListStaffUseCase(f.events, f.staff, f.customers, f.log).Execute(ctx, ListStaffQuery{OrganizerID: "organizer-1", EventID: eventID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "staff@example.com", list[0].Email)

	remove := NewRemoveStaffUseCase(f.events, f.staff, f.log)
	require.NoError(t, remove.Execute(ctx, RemoveStaffCommand{OrganizerID: "organizer-1", EventID: eventID, StaffID: member.ID()}))
	assert.True(t, errors.IsNotFoundError(remove.Execute(ctx, RemoveStaffCommand{OrganizerID: "organizer-1", EventID: eventID, StaffID: member.ID()})))
}
