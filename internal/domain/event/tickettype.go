package event

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/biztime"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/id"
)

var colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// TicketType is a pricing tier of an event. Seats are provisioned under it.
type TicketType struct {
	id        string
	eventID   string
	tierName  string
	tierPrice decimal.Decimal
	color     string
	createdAt time.Time
	updatedAt time.Time
}

func NewTicketType(eventID, tierName string, tierPrice decimal.Decimal, color string) (*TicketType, error) {
	if eventID == "" {
		return nil, errors.NewValidationError("event ID is required")
	}
	if err := validateTier(tierName, tierPrice, color); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &TicketType{
		id:        id.New(),
		eventID:   eventID,
		tierName:  strings.TrimSpace(tierName),
		tierPrice: tierPrice,
		color:     color,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTicketType(
	typeID, eventID, tierName string,
	tierPrice decimal.Decimal,
	color string,
	createdAt, updatedAt time.Time,
) *TicketType {
	return &TicketType{
		id:        typeID,
		eventID:   eventID,
		tierName:  tierName,
		tierPrice: tierPrice,
		color:     color,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update changes the tier. Already provisioned seats keep their prices.
func (t *TicketType) Update(tierName string, tierPrice decimal.Decimal, color string) error {
	if err := validateTier(tierName, tierPrice, color); err != nil {
		return err
	}
	t.tierName = strings.TrimSpace(tierName)
	t.tierPrice = tierPrice
	t.color = color
	t.updatedAt = biztime.NowUTC()
	return nil
}

func validateTier(tierName string, tierPrice decimal.Decimal, color string) error {
	if strings.TrimSpace(tierName) == "" {
		return errors.NewValidationError("tier name is required")
	}
	if !tierPrice.IsPositive() {
		return errors.NewValidationError("tier price must be positive")
	}
	if color != "" && !colorPattern.MatchString(color) {
		return errors.NewValidationError("color must be a hex color such as #1a2b3c")
	}
	return nil
}

// PriceFor returns the seat price: the provided price when positive,
// otherwise the tier price.
func (t *TicketType) PriceFor(provided decimal.Decimal) decimal.Decimal {
	if provided.IsPositive() {
		return provided
	}
	return t.tierPrice
}

func (t *TicketType) BelongsTo(eventID string) bool {
	return t.eventID == eventID
}

func (t *TicketType) ID() string                 { return t.id }
func (t *TicketType) EventID() string            { return t.eventID }
func (t *TicketType) TierName() string           { return t.tierName }
func (t *TicketType) TierPrice() decimal.Decimal { return t.tierPrice }
func (t *TicketType) Color() string              { return t.color }
func (t *TicketType) CreatedAt() time.Time       { return t.createdAt }
func (t *TicketType) UpdatedAt() time.Time       { return t.updatedAt }
