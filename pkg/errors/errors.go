package errors

import "fmt"

// Error codes for the progression engine.
const (
	// Catalog errors
	ErrCodeCatalogInvalid  = "CATALOG_INVALID"
	ErrCodeCatalogNotFound = "CATALOG_NOT_FOUND"

	// Domain errors
	ErrCodeQuestNotFound       = "QUEST_NOT_FOUND"
	ErrCodeAchievementNotFound = "ACHIEVEMENT_NOT_FOUND"
	ErrCodeTalentNotFound      = "TALENT_NOT_FOUND"

	// Storage errors
	ErrCodeDatabaseError   = "DATABASE_ERROR"
	ErrCodeSnapshotCorrupt = "SNAPSHOT_CORRUPT"

	// Validation errors
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeInvalidInput     = "INVALID_INPUT"
)

// EngineError represents an error in the progression engine.
//
// Rejected player commands (a talent spend that fails its prerequisite
// check, a second reroll in one day) are NOT EngineErrors; they are
// ordinary results signalled through applied/not-applied return values.
// EngineError is reserved for catalog, input, and storage faults.
type EngineError struct {
	Code    string
	Message string
	Err     error
}

func (e *EngineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// NewEngineError creates a new EngineError.
func NewEngineError(code, message string, err error) *EngineError {
	return &EngineError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Domain-specific error constructors

// ErrQuestNotFound returns an error when a quest definition is not found.
func ErrQuestNotFound(questID string) *EngineError {
	return &EngineError{
		Code:    ErrCodeQuestNotFound,
		Message: fmt.Sprintf("quest not found: %s", questID),
	}
}

// ErrAchievementNotFound returns an error when an achievement is not found.
func ErrAchievementNotFound(achievementID string) *EngineError {
	return &EngineError{
		Code:    ErrCodeAchievementNotFound,
		Message: fmt.Sprintf("achievement not found: %s", achievementID),
	}
}

// ErrTalentNotFound returns an error when a talent node is not found.
func ErrTalentNotFound(nodeID string) *EngineError {
	return &EngineError{
		Code:    ErrCodeTalentNotFound,
		Message: fmt.Sprintf("talent node not found: %s", nodeID),
	}
}

// ErrCatalogInvalid returns an error for an invalid catalog.
func ErrCatalogInvalid(reason string) *EngineError {
	return &EngineError{
		Code:    ErrCodeCatalogInvalid,
		Message: fmt.Sprintf("invalid catalog: %s", reason),
	}
}

// ErrCatalogNotFound returns an error when the catalog file cannot be read.
func ErrCatalogNotFound(path string, err error) *EngineError {
	return &EngineError{
		Code:    ErrCodeCatalogNotFound,
		Message: fmt.Sprintf("catalog file not found: %s", path),
		Err:     err,
	}
}

// ErrDatabaseError wraps storage errors.
func ErrDatabaseError(operation string, err error) *EngineError {
	return &EngineError{
		Code:    ErrCodeDatabaseError,
		Message: fmt.Sprintf("database error during %s", operation),
		Err:     err,
	}
}

// ErrSnapshotCorrupt returns an error for an unreadable snapshot section.
func ErrSnapshotCorrupt(section string, err error) *EngineError {
	return &EngineError{
		Code:    ErrCodeSnapshotCorrupt,
		Message: fmt.Sprintf("corrupt snapshot section: %s", section),
		Err:     err,
	}
}

// ErrValidationFailed returns a validation error.
func ErrValidationFailed(field, reason string) *EngineError {
	return &EngineError{
		Code:    ErrCodeValidationFailed,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
	}
}

// ErrInvalidInput wraps a decode failure over caller-supplied bytes.
func ErrInvalidInput(what string, err error) *EngineError {
	return &EngineError{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("invalid %s", what),
		Err:     err,
	}
}
