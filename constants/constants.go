package constants

// User roles
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Error messages
const (
	ErrInvalidCredentials = "Invalid credentials"
	ErrDuplicateEmail     = "User with this email already exists"
	ErrInvalidEmail       = "Invalid email format"
	ErrWeakPassword       = "Password must be at least 6 characters"
	ErrInvalidRole        = `Role must be either "admin" or "customer"`
	ErrAdminRequired      = "Admin access required"

	ErrSweetNotFound        = "Sweet not found"
	ErrDuplicateName        = "Sweet with this name already exists"
	ErrInvalidPrice         = "Price must be greater than 0"
	ErrNegativeQuantity     = "Quantity cannot be negative"
	ErrNonPositiveQuantity  = "Quantity must be greater than 0"
	ErrNegativeMinPrice     = "Minimum price cannot be negative"
	ErrNegativeMaxPrice     = "Maximum price cannot be negative"
	ErrInvalidPriceRange    = "Minimum price cannot be greater than maximum price"
	ErrInsufficientStockFmt = "Not enough stock. Available: %d"

	ErrInvalidPriceValue    = "Invalid price value"
	ErrInvalidQuantityValue = "Invalid quantity value"
	ErrInvalidInput         = "Invalid input"
	ErrUnexpected           = "Internal server error"
)
