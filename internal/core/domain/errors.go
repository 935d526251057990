package domain

import "errors"

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidID          = errors.New("invalid id")
)

// Conflicts raised by the unique indexes.
var (
	ErrEmailTaken     = errors.New("email already registered")
	ErrAlreadyApplied = errors.New("already applied to this job")
	ErrAlreadySaved   = errors.New("job already saved")
)

var (
	ErrCompanyNotFound     = errors.New("company not found")
	ErrJobSeekerNotFound   = errors.New("job seeker not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrSavedJobNotFound    = errors.New("job not found in saved list")
	ErrNoApplications      = errors.New("no applications found for this job")
)

// ValidationError reports input that breaks a field constraint.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

// IsValidation reports whether err is a ValidationError or one of the
// sentinel errors that describe malformed input.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrInvalidID) || errors.Is(err, ErrInvalidStatus)
}

// IsNotFound reports whether err means a referenced entity is absent.
func IsNotFound(err error) bool {
	switch {
	case errors.Is(err, ErrCompanyNotFound),
		errors.Is(err, ErrJobSeekerNotFound),
		errors.Is(err, ErrJobNotFound),
		errors.Is(err, ErrApplicationNotFound),
		errors.Is(err, ErrSavedJobNotFound),
		errors.Is(err, ErrNoApplications):
		return true
	}
	return false
}

// IsConflict reports whether err is a uniqueness violation.
func IsConflict(err error) bool {
	return errors.Is(err, ErrEmailTaken) || errors.Is(err, ErrAlreadyApplied) || errors.Is(err, ErrAlreadySaved)
}
