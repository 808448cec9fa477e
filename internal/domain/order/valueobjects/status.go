package valueobjects

import "fmt"

type OrderStatus string

const (
	OrderStatusOpen       OrderStatus = "OPEN"
	OrderStatusPaid       OrderStatus = "PAID"
	OrderStatusTransfered OrderStatus = "TRANSFERED"
	OrderStatusAbandoned  OrderStatus = "ABANDONED"
)

var validOrderStatuses = map[OrderStatus]bool{
	OrderStatusOpen:       true,
	OrderStatusPaid:       true,
	OrderStatusTransfered: true,
	OrderStatusAbandoned:  true,
}

var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusOpen: {OrderStatusPaid, OrderStatusAbandoned},
	OrderStatusPaid: {OrderStatusTransfered},
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	return validOrderStatuses[s]
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsFinal() bool {
	return s == OrderStatusTransfered || s == OrderStatusAbandoned
}

func NewOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid order status: %s", s)
	}
	return status, nil
}
