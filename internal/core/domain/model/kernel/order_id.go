package kernel

import (
	"fmt"

	"shippinglabel/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderIDIsNotConstructed is returned when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString")

// OrderID identifies the e-commerce order a label workflow belongs to.
// Every piece of workflow state is replicated per OrderID and never shared.
//
// OrderID is comparable and can be used directly as a map key.
//
// Example:
//
//	id, err := kernel.OrderIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
//	states[id] = labelstate.Empty()
type OrderID struct {
	id uuid.UUID
}

// NewOrderID generates a new random OrderID.
func NewOrderID() OrderID {
	return OrderID{id: uuid.New()}
}

// OrderIDFromString parses an OrderID from any textual UUID form accepted by uuid.Parse.
func OrderIDFromString(s string) (OrderID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("invalid UUID format: %w", err))
	}

	orderID := OrderID{id: id}
	if err = orderID.Validate(); err != nil {
		return OrderID{}, err
	}
	return orderID, nil
}

// OrderIDFromUUID wraps an existing uuid.UUID.
func OrderIDFromUUID(id uuid.UUID) (OrderID, error) {
	orderID := OrderID{id: id}
	if err := orderID.Validate(); err != nil {
		return OrderID{}, err
	}
	return orderID, nil
}

// String returns the canonical hyphenated form.
func (o OrderID) String() string {
	return o.id.String()
}

// UUID returns the underlying uuid.UUID, mainly for persistence adapters.
func (o OrderID) UUID() uuid.UUID {
	return o.id
}

// IsEqual reports whether both identifiers are the same.
func (o OrderID) IsEqual(other OrderID) bool {
	return o.id == other.id
}

// Validate returns ErrOrderIDIsNotConstructed for the nil UUID.
func (o OrderID) Validate() error {
	if o.id == uuid.Nil {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (o OrderID) MarshalText() ([]byte, error) {
	return o.id.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *OrderID) UnmarshalText(data []byte) error {
	parsed, err := OrderIDFromString(string(data))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
