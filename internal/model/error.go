package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON          = "INVALID_JSON"
	ErrCodeInvalidQuery         = "INVALID_QUERY"
	ErrCodeInvalidProduct       = "INVALID_PRODUCT"
	ErrCodeDuplicateProduct     = "DUPLICATE_PRODUCT"
	ErrCodeProductNotFound      = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound        = "ORDER_NOT_FOUND"
	ErrCodeEmptyCart            = "EMPTY_CART"
	ErrCodeInvalidQuantity      = "INVALID_QUANTITY"
	ErrCodeInvalidStatus        = "INVALID_STATUS"
	ErrCodeInvalidTransition    = "INVALID_TRANSITION"
	ErrCodeCustomerNameRequired = "CUSTOMER_NAME_REQUIRED"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

// Fixed messages stored in a store's error field when a fixture load fails.
const (
	FetchProductsFailed = "Failed to fetch products"
	FetchOrdersFailed   = "Failed to fetch orders"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches any DomainError carrying the same code, so field-specific
// validation errors still compare equal to their sentinel.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidProduct       = NewDomainError(ErrCodeInvalidProduct, "Product fields are invalid")
	ErrDuplicateProduct     = NewDomainError(ErrCodeDuplicateProduct, "A product with this ID already exists")
	ErrProductNotFound      = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrOrderNotFound        = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrEmptyCart            = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrInvalidQuantity      = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidStatus        = NewDomainError(ErrCodeInvalidStatus, "Unknown status")
	ErrInvalidTransition    = NewDomainError(ErrCodeInvalidTransition, "Order status cannot change from a terminal state")
	ErrCustomerNameRequired = NewDomainError(ErrCodeCustomerNameRequired, "Customer name is required")
)
