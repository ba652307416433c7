package customer

import "time"

const CustomerContactChangedEventName = "CustomerContactChanged"

// EventNames lists every event recorded by customer entities.
var EventNames = []string{
	CustomerCreatedEventName,
	TransactionAddedEventName,
	CustomerContactChangedEventName,
}

type CustomerContactChangedEvent struct {
	CustomerID uint64    `json:"customer_id"`
	OldEmail   string    `json:"old_email"`
	Email      string    `json:"email"`
	Mobile     string    `json:"mobile"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewCustomerContactChangedEvent(customerID uint64, oldEmail, email, mobile string) CustomerContactChangedEvent {
	return CustomerContactChangedEvent{
		CustomerID: customerID,
		OldEmail:   oldEmail,
		Email:      email,
		Mobile:     mobile,
		OccurredAt: time.Now().UTC(),
	}
}

func (e CustomerContactChangedEvent) EventName() string {
	return CustomerContactChangedEventName
}
