package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Listing errors
	ErrListingNotFound = errors.New("listing not found")
	ErrListingNotOwned = errors.New("listing not owned by caller")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationNotOwned = errors.New("reservation not owned by caller")
	ErrDatesUnavailable    = errors.New("requested dates overlap an existing reservation")

	// Transaction errors
	ErrTransactionNotFound = errors.New("transaction not found")

	// Conversation errors
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("caller is not a conversation participant")

	// Authorization errors
	ErrForbidden = errors.New("caller is not allowed to perform this action")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
