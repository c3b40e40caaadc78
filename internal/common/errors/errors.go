// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Decision engine configuration / invariant errors. These indicate an
// authoring defect in the static tables and are never retryable.
const (
	ErrCodeUnknownActivityQuestion  ErrorCode = "UNKNOWN_ACTIVITY_QUESTION"
	ErrCodeActivityCatalogInvalid   ErrorCode = "ACTIVITY_CATALOG_INVALID"
	ErrCodeDescriptorNotFound       ErrorCode = "DESCRIPTOR_NOT_FOUND"
	ErrCodeAnswerFormatInvalid      ErrorCode = "ANSWER_FORMAT_INVALID"
	ErrCodePointsConditionInvariant ErrorCode = "POINTS_CONDITION_INVARIANT"

	ErrCodeDecisionParseFailed      ErrorCode = "DECISION_PARSE_ERROR"
	ErrCodeDecisionSchemaInvalid    ErrorCode = "DECISION_SCHEMA_INVALID"
	ErrCodeUnsupportedBenefitCode   ErrorCode = "UNSUPPORTED_BENEFIT_CODE"
	ErrCodeDecisionValidationFailed ErrorCode = "DECISION_VALIDATION_FAILED"
)

// Broker transport errors. These are the only retryable codes.
const (
	ErrCodeBrokerUnavailable ErrorCode = "BROKER_UNAVAILABLE"
	ErrCodeBrokerTimeout     ErrorCode = "BROKER_TIMEOUT"
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
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
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

	if e.ErrorVariables != nil {
		for k, v := range e.ErrorVariables {
			vars[k] = v
		}
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewUnknownActivityQuestionError creates a non-retryable catalog lookup error.
func NewUnknownActivityQuestionError(key string) *StandardError {
	details := fmt.Sprintf("questionKey: %q", key)
	if key == "" {
		details = "questionKey is empty"
	}
	return &StandardError{
		Code:      ErrCodeUnknownActivityQuestion,
		Message:   "Unknown activity question",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewActivityCatalogInvalidError creates a non-retryable catalog construction error.
func NewActivityCatalogInvalidError(key, reason string) *StandardError {
	return &StandardError{
		Code:      ErrCodeActivityCatalogInvalid,
		Message:   "Activity question catalog is invalid",
		Details:   fmt.Sprintf("questionKey: %q, reason: %s", key, reason),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDescriptorNotFoundError creates a non-retryable descriptor table lookup error.
func NewDescriptorNotFoundError(questionKey, letter string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDescriptorNotFound,
		Message:   "No descriptor for answer letter",
		Details:   fmt.Sprintf("questionKey: %s, letter: %q", questionKey, letter),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAnswerFormatError creates a non-retryable recorded answer parse error.
func NewAnswerFormatError(questionKey, value string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAnswerFormatInvalid,
		Message:   "Recorded answer value is not in the expected form",
		Details:   fmt.Sprintf("questionKey: %s, value: %q", questionKey, value),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPointsConditionInvariantError reports a gap or overlap in a points range
// table. This must never be reachable with a correctly authored table.
func NewPointsConditionInvariantError(activityType string, points, matches int) *StandardError {
	return &StandardError{
		Code:      ErrCodePointsConditionInvariant,
		Message:   "Expected exactly one points condition to be satisfied",
		Details:   fmt.Sprintf("activityType: %s, points: %d, satisfied: %d", activityType, points, matches),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDecisionParseFailedError creates a non-retryable job variable parse error.
func NewDecisionParseFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDecisionParseFailed,
		Message:   "Failed to parse decision case payload",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDecisionSchemaInvalidError creates a non-retryable payload schema error.
func NewDecisionSchemaInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDecisionSchemaInvalid,
		Message:   "Decision case payload failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnsupportedBenefitCodeError creates a non-retryable benefit dispatch error.
func NewUnsupportedBenefitCodeError(benefitCode string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnsupportedBenefitCode,
		Message:   "No decision engine registered for benefit code",
		Details:   fmt.Sprintf("benefitCode: %q", benefitCode),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBrokerUnavailableError creates a retryable broker connectivity error.
func NewBrokerUnavailableError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeBrokerUnavailable,
		Message:   fmt.Sprintf("Broker operation %q failed", operation),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewBrokerTimeoutError creates a retryable broker timeout error.
func NewBrokerTimeoutError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeBrokerTimeout,
		Message:   fmt.Sprintf("Broker operation %q timed out", operation),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Retry & BPMN Mapping
// ==========================

// BPMNErrorMapping maps internal codes to the codes thrown to the workflow engine.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeUnknownActivityQuestion:  "DECISION_CONFIGURATION_ERROR",
	ErrCodeActivityCatalogInvalid:   "DECISION_CONFIGURATION_ERROR",
	ErrCodeDescriptorNotFound:       "DECISION_CONFIGURATION_ERROR",
	ErrCodeAnswerFormatInvalid:      "DECISION_CONFIGURATION_ERROR",
	ErrCodePointsConditionInvariant: "DECISION_CONFIGURATION_ERROR",
	ErrCodeDecisionParseFailed:      "PARSE_ERROR",
	ErrCodeDecisionSchemaInvalid:    "PARSE_ERROR",
	ErrCodeUnsupportedBenefitCode:   "UNSUPPORTED_BENEFIT",
	ErrCodeDecisionValidationFailed: "DECISION_VALIDATION_FAILED",
}

// GetRetryCount returns how many times a job failing with the code should be
// retried. The engine is a pure computation, so only broker errors retry.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeBrokerUnavailable, ErrCodeBrokerTimeout:
		return 3
	}
	return 0
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	return &BPMNError{
		Code:      bpmnCode,
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// IsConfigurationError reports whether the error is an authoring defect in the
// static decision tables, as opposed to a bad payload.
func IsConfigurationError(err error) bool {
	stdErr, ok := err.(*StandardError)
	if !ok {
		return false
	}
	switch stdErr.Code {
	case ErrCodeUnknownActivityQuestion, ErrCodeActivityCatalogInvalid,
		ErrCodeDescriptorNotFound, ErrCodeAnswerFormatInvalid,
		ErrCodePointsConditionInvariant:
		return true
	}
	return false
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "CONDITION") || strings.Contains(codeStr, "CATALOG") || strings.Contains(codeStr, "DESCRIPTOR") || strings.Contains(codeStr, "QUESTION"):
		return "CONFIGURATION"
	case strings.Contains(codeStr, "PARSE") || strings.Contains(codeStr, "SCHEMA"):
		return "PARSE"
	case strings.Contains(codeStr, "VALIDATION"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
