package service

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator mints identifiers for new records.
type IDGenerator func() (string, error)

// NewProductID returns a time-ordered product identifier.
func NewProductID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate product id: %w", err)
	}
	return id.String(), nil
}

// NewOrderID returns a time-ordered order identifier of the form o_<uuid>.
func NewOrderID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate order id: %w", err)
	}
	return "o_" + id.String(), nil
}
