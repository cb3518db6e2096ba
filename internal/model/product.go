package model

import (
	"time"
	"unicode/utf8"
)

// ProductStatus is the visibility state of a catalogue entry.
type ProductStatus string

const (
	ProductActive   ProductStatus = "ACTIVE"
	ProductInactive ProductStatus = "INACTIVE"
)

// Valid reports whether s is a known product status.
func (s ProductStatus) Valid() bool {
	return s == ProductActive || s == ProductInactive
}

// Toggle returns the opposite status.
func (s ProductStatus) Toggle() ProductStatus {
	if s == ProductActive {
		return ProductInactive
	}
	return ProductActive
}

// Product represents a catalogue entry.
// A soft-deleted product stays in the collection and is only hidden from listings and metrics.
type Product struct {
	ID        string        `json:"id" yaml:"id"`
	Name      string        `json:"name" yaml:"name"`
	Price     float64       `json:"price" yaml:"price"`
	Stock     int           `json:"stock" yaml:"stock"`
	Category  string        `json:"category" yaml:"category"`
	Rating    float64       `json:"rating" yaml:"rating"`
	Status    ProductStatus `json:"status" yaml:"status"`
	UpdatedAt time.Time     `json:"updatedAt" yaml:"updatedAt"`
	IsDeleted bool          `json:"isDeleted" yaml:"isDeleted"`
}

// Visible reports whether the product takes part in listings and metrics.
func (p Product) Visible() bool {
	return !p.IsDeleted
}

// ProductInput holds the editable fields of a product.
type ProductInput struct {
	Name     string        `json:"name"`
	Price    float64       `json:"price"`
	Stock    int           `json:"stock"`
	Category string        `json:"category"`
	Rating   float64       `json:"rating"`
	Status   ProductStatus `json:"status,omitempty"`
}

// Validate applies the simple field checks of the product forms.
func (in ProductInput) Validate() error {
	if utf8.RuneCountInString(in.Name) < 3 {
		return NewDomainError(ErrCodeInvalidProduct, "Name must be at least 3 characters")
	}
	if in.Price <= 0 {
		return NewDomainError(ErrCodeInvalidProduct, "Price must be greater than 0")
	}
	if in.Stock < 0 {
		return NewDomainError(ErrCodeInvalidProduct, "Stock cannot be negative")
	}
	if in.Category == "" {
		return NewDomainError(ErrCodeInvalidProduct, "Category is required")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return NewDomainError(ErrCodeInvalidProduct, "Rating must be between 1 and 5")
	}
	if in.Status != "" && !in.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
