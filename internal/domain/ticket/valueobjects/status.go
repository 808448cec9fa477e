package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusNew        TicketStatus = "NEW"
	StatusNotForSale TicketStatus = "NOT_FOR_SALE"
	StatusNotExist   TicketStatus = "NOT_EXIST"
	StatusLock       TicketStatus = "LOCK"
	StatusSold       TicketStatus = "SOLD"
	StatusResale     TicketStatus = "RESALE"
	StatusUsed       TicketStatus = "USED"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusNew:        true,
	StatusNotForSale: true,
	StatusNotExist:   true,
	StatusLock:       true,
	StatusSold:       true,
	StatusResale:     true,
	StatusUsed:       true,
}

// ConfigurableStatuses are the seat statuses an organizer may set directly.
var ConfigurableStatuses = []TicketStatus{StatusNew, StatusNotForSale, StatusNotExist}

// MarketStatuses are the statuses of seats that have entered the marketplace.
// Inventory holding any of them cannot be removed.
var MarketStatuses = []TicketStatus{StatusLock, StatusSold, StatusResale, StatusUsed}

// CountedStatuses make up a ticket type's total.
var CountedStatuses = []TicketStatus{StatusNew, StatusSold, StatusNotForSale, StatusResale, StatusUsed}

// SoldStatuses make up a ticket type's sold count.
var SoldStatuses = []TicketStatus{StatusSold, StatusUsed, StatusResale}

// AvailableStatuses are the statuses a buyer can check out.
var AvailableStatuses = []TicketStatus{StatusNew, StatusResale}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsConfigurable() bool {
	return ts == StatusNew || ts == StatusNotForSale || ts == StatusNotExist
}

// IsOwned reports whether a ticket in this status must carry an owner.
func (ts TicketStatus) IsOwned() bool {
	return ts == StatusSold || ts == StatusResale || ts == StatusUsed
}

func (ts TicketStatus) InMarket() bool {
	for _, s := range MarketStatuses {
		if ts == s {
			return true
		}
	}
	return false
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
