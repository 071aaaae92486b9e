package model

// Error codes carried by domain errors.
const (
	ErrCodeInvalidArgument = "INVALID_ARGUMENT"
	ErrCodeInvalidFixture  = "INVALID_FIXTURE"
	ErrCodeDuplicateKey    = "DUPLICATE_KEY"
)

// Domain errors for query and fixture logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors. Callers wrap them with fmt.Errorf("%w: ...") to add
// detail, so compare with errors.Is.
var (
	ErrInvalidArgument = NewDomainError(ErrCodeInvalidArgument, "invalid argument")
	ErrInvalidFixture  = NewDomainError(ErrCodeInvalidFixture, "invalid fixture")
	ErrDuplicateKey    = NewDomainError(ErrCodeDuplicateKey, "duplicate key")
)
