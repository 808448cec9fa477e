package valueobjects

// Trigger names an operation that moves a ticket between statuses.
type Trigger string

const (
	TriggerReserve       Trigger = "Reserve"
	TriggerSettle        Trigger = "Settle"
	TriggerAbandon       Trigger = "Abandon"
	TriggerAbandonResale Trigger = "AbandonResale"
	TriggerRelist        Trigger = "Relist"
	TriggerUnlist        Trigger = "Unlist"
	TriggerCheckIn       Trigger = "CheckIn"
	TriggerRestock       Trigger = "Restock"
	TriggerWithhold      Trigger = "Withhold"
	TriggerRemove        Trigger = "Remove"
)

func (t Trigger) String() string {
	return string(t)
}

type transitionKey struct {
	from    TicketStatus
	trigger Trigger
}

// ticketTransitions is exhaustive: a (status, trigger) pair missing here is
// illegal.
var ticketTransitions = map[transitionKey]TicketStatus{
	{StatusNew, TriggerReserve}:        StatusLock,
	{StatusResale, TriggerReserve}:     StatusLock,
	{StatusLock, TriggerSettle}:        StatusSold,
	{StatusLock, TriggerAbandon}:       StatusNew,
	{StatusLock, TriggerAbandonResale}: StatusResale,
	{StatusSold, TriggerRelist}:        StatusResale,
	{StatusResale, TriggerRelist}:      StatusResale,
	{StatusResale, TriggerUnlist}:      StatusSold,
	{StatusSold, TriggerCheckIn}:       StatusUsed,
}

func init() {
	configure := map[Trigger]TicketStatus{
		TriggerRestock:  StatusNew,
		TriggerWithhold: StatusNotForSale,
		TriggerRemove:   StatusNotExist,
	}
	for _, from := range ConfigurableStatuses {
		for trigger, to := range configure {
			ticketTransitions[transitionKey{from, trigger}] = to
		}
	}
}

// Next returns the status reached by applying trigger in from.
func Next(from TicketStatus, trigger Trigger) (TicketStatus, bool) {
	to, ok := ticketTransitions[transitionKey{from, trigger}]
	return to, ok
}

// ConfigureTrigger maps a target configurable status to its trigger.
func ConfigureTrigger(to TicketStatus) (Trigger, bool) {
	switch to {
	case StatusNew:
		return TriggerRestock, true
	case StatusNotForSale:
		return TriggerWithhold, true
	case StatusNotExist:
		return TriggerRemove, true
	}
	return "", false
}
