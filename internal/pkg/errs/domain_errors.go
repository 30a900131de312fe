package errs

// Outcome categories shared by every layer. Domain packages derive their
// specific errors by wrapping one of these, so callers can branch on the
// category with Is while tests still match the specific error.
var (
	// malformed input: non-positive amount, past deadline, bad payload
	ErrValidation = New("validation error")
	// agency outside its assignment, or a winner was already chosen
	ErrNotEligible = New("not eligible")
	// quote is no longer pending
	ErrAlreadyDecided = New("quote already decided")
	// request already has a winning agency
	ErrAlreadyAssigned = New("request already assigned")
	// quote validity window has passed
	ErrQuoteExpired = New("quote expired")
	// terminal state or out-of-order lifecycle step
	ErrInvalidTransition = New("invalid transition")
	// unresolvable assignment policy or inconsistent catalog data
	ErrConfiguration = New("configuration error")

	ErrNotFound     = New("not found")
	ErrForbidden    = New("forbidden")
	ErrUnauthorized = New("unauthorized")

	ErrDatabaseOperationFailed = New("database operation failed")
)
