package services

// ValidationError is returned by an orchestrator operation before any
// mutation has taken place. The input is always user-correctable; there
// are no transient faults in the engine.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation error codes surfaced to the HTTP layer
const (
	CodeMissingConsignee = "MISSING_CONSIGNEE"
	CodeMissingAddress   = "MISSING_ADDRESS"
	CodeMissingVendor    = "MISSING_VENDOR"
	CodeEmptySelection   = "EMPTY_SELECTION"
	CodeRowNotFound      = "ROW_NOT_FOUND"
	CodeParcelNotFound   = "PARCEL_NOT_FOUND"
	CodeStyleNotFound    = "STYLE_NOT_FOUND"
	CodeUnknownStage     = "UNKNOWN_STAGE"
	CodeStageLocked      = "STAGE_LOCKED"
	CodeQualityGate      = "QUALITY_GATE_NOT_CONFIRMED"
	CodeMixedBuyers      = "MIXED_BUYERS"
)

func validationErr(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}
