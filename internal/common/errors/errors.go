// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Engine errors: invariant violations supplied by the caller.
const (
	ErrCodeUnknownSection      ErrorCode = "UNKNOWN_SECTION"
	ErrCodeUnknownLocale       ErrorCode = "UNKNOWN_LOCALE"
	ErrCodeInvalidProfile      ErrorCode = "INVALID_PROFILE"
	ErrCodeInvalidLocaleSet    ErrorCode = "INVALID_LOCALE_SET"
	ErrCodeInvalidProductCount ErrorCode = "INVALID_PRODUCT_COUNT"
	ErrCodeInvalidSectionValue ErrorCode = "INVALID_SECTION_VALUE"
)

// Host errors: storage, cache, directory and job input.
const (
	ErrCodeProfileNotFound        ErrorCode = "PROFILE_NOT_FOUND"
	ErrCodeProfileVersionConflict ErrorCode = "PROFILE_VERSION_CONFLICT"
	ErrCodeProfileStoreFailed     ErrorCode = "PROFILE_STORE_FAILED"
	ErrCodeScoreCacheFailed       ErrorCode = "SCORE_CACHE_FAILED"
	ErrCodeDirectoryIndexFailed   ErrorCode = "DIRECTORY_INDEX_FAILED"
	ErrCodeInputValidationFailed  ErrorCode = "INPUT_VALIDATION_FAILED"
	ErrCodeCatalogInvalid         ErrorCode = "CATALOG_INVALID"
	ErrCodeBrokerUnavailable      ErrorCode = "BROKER_UNAVAILABLE"
	ErrCodeInternal               ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("StandardError[%s]: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Is matches any StandardError with the same code, so sentinel comparisons
// like errors.Is(err, &StandardError{Code: ErrCodeUnknownLocale}) work.
func (e *StandardError) Is(target error) bool {
	t, ok := target.(*StandardError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// HasCode reports whether err wraps a StandardError with the given code.
func HasCode(err error, code ErrorCode) bool {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code == code
	}
	return false
}

// CodeOf returns the code of a wrapped StandardError, or ErrCodeInternal.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ErrCodeInternal
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

func newError(code ErrorCode, message, details string, retryable bool) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownSectionError is returned when a section id is not part of the profile.
func NewUnknownSectionError(sectionID string) *StandardError {
	e := newError(ErrCodeUnknownSection, "Section does not exist on profile", fmt.Sprintf("sectionId: %s", sectionID), false)
	e.Metadata = map[string]interface{}{"sectionId": sectionID}
	return e
}

// NewUnknownLocaleError is returned when writing a locale outside the active set.
func NewUnknownLocaleError(locale string) *StandardError {
	e := newError(ErrCodeUnknownLocale, "Locale is not active on profile", fmt.Sprintf("locale: %s", locale), false)
	e.Metadata = map[string]interface{}{"locale": locale}
	return e
}

func NewInvalidProfileError(details string) *StandardError {
	return newError(ErrCodeInvalidProfile, "Profile violates invariants", details, false)
}

func NewInvalidLocaleSetError(details string) *StandardError {
	return newError(ErrCodeInvalidLocaleSet, "Invalid locale set", details, false)
}

func NewInvalidProductCountError(count int) *StandardError {
	return newError(ErrCodeInvalidProductCount, "Product count must not be negative", fmt.Sprintf("productCount: %d", count), false)
}

func NewInvalidSectionValueError(sectionID, details string) *StandardError {
	return newError(ErrCodeInvalidSectionValue, "Value does not fit section", fmt.Sprintf("sectionId: %s, %s", sectionID, details), false)
}

func NewProfileNotFoundError(profileID string) *StandardError {
	return newError(ErrCodeProfileNotFound, "Profile not found", fmt.Sprintf("profileId: %s", profileID), false)
}

// NewProfileVersionConflictError signals a lost compare-and-swap; the job may be retried.
func NewProfileVersionConflictError(profileID string, expected int64) *StandardError {
	return newError(ErrCodeProfileVersionConflict, "Profile was modified concurrently",
		fmt.Sprintf("profileId: %s, expectedVersion: %d", profileID, expected), true)
}

func NewProfileStoreFailedError(err error) *StandardError {
	return newError(ErrCodeProfileStoreFailed, "Profile store operation failed", err.Error(), true)
}

func NewScoreCacheFailedError(err error) *StandardError {
	return newError(ErrCodeScoreCacheFailed, "Score cache operation failed", err.Error(), false)
}

func NewDirectoryIndexFailedError(err error) *StandardError {
	return newError(ErrCodeDirectoryIndexFailed, "Directory index operation failed", err.Error(), true)
}

func NewInputValidationFailedError(details string) *StandardError {
	return newError(ErrCodeInputValidationFailed, "Input validation failed", details, false)
}

func NewCatalogInvalidError(details string) *StandardError {
	return newError(ErrCodeCatalogInvalid, "Section catalog is invalid", details, false)
}

// NewBrokerUnavailableError wraps a failed Zeebe gateway call.
func NewBrokerUnavailableError(operation string, err error, retryable bool) *StandardError {
	e := newError(ErrCodeBrokerUnavailable, "Zeebe gateway call failed", err.Error(), retryable)
	e.Metadata = map[string]interface{}{"operation": operation}
	return e
}

// ==========================
// 4. Error Mapping & Retry
// ==========================

var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeUnknownSection:         "UNKNOWN_SECTION",
	ErrCodeUnknownLocale:          "UNKNOWN_LOCALE",
	ErrCodeInvalidProfile:         "INVALID_PROFILE",
	ErrCodeInvalidLocaleSet:       "INVALID_LOCALE_SET",
	ErrCodeInvalidProductCount:    "INVALID_PRODUCT_COUNT",
	ErrCodeInvalidSectionValue:    "INVALID_SECTION_VALUE",
	ErrCodeProfileNotFound:        "PROFILE_NOT_FOUND",
	ErrCodeProfileVersionConflict: "PROFILE_VERSION_CONFLICT",
	ErrCodeProfileStoreFailed:     "PROFILE_STORE_FAILED",
	ErrCodeScoreCacheFailed:       "SCORE_CACHE_FAILED",
	ErrCodeDirectoryIndexFailed:   "DIRECTORY_INDEX_FAILED",
	ErrCodeInputValidationFailed:  "INPUT_VALIDATION_FAILED",
	ErrCodeCatalogInvalid:         "CATALOG_INVALID",
	ErrCodeBrokerUnavailable:      "BROKER_UNAVAILABLE",
}

func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeProfileStoreFailed,
		ErrCodeDirectoryIndexFailed,
		ErrCodeBrokerUnavailable:
		return 3

	case ErrCodeProfileVersionConflict:
		return 2

	default:
		return 0 // business errors: no retry
	}
}

func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           bpmnCode,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "SECTION") || strings.Contains(codeStr, "LOCALE") ||
		strings.Contains(codeStr, "PRODUCT_COUNT") || codeStr == string(ErrCodeInvalidProfile):
		return "PROFILE"
	case strings.Contains(codeStr, "STORE") || strings.Contains(codeStr, "VERSION") || strings.Contains(codeStr, "NOT_FOUND"):
		return "STORAGE"
	case strings.Contains(codeStr, "CACHE"):
		return "CACHE"
	case strings.Contains(codeStr, "BROKER"):
		return "WORKFLOW"
	case strings.Contains(codeStr, "DIRECTORY"):
		return "SEARCH"
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "CATALOG"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
