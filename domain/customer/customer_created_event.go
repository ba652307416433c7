package customer

import "time"

const CustomerCreatedEventName = "CustomerCreated"

type CustomerCreatedEvent struct {
	CustomerID uint64    `json:"customer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewCustomerCreatedEvent(customerID uint64, name, email string) CustomerCreatedEvent {
	return CustomerCreatedEvent{
		CustomerID: customerID,
		Name:       name,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	}
}

func (e CustomerCreatedEvent) EventName() string {
	return CustomerCreatedEventName
}
