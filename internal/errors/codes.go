package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount    ErrorCode = "TRANSACTION_002"
	TransactionInvalidType      ErrorCode = "TRANSACTION_003"
	TransactionMissingCategory  ErrorCode = "TRANSACTION_004"
	TransactionUnknownCategory  ErrorCode = "TRANSACTION_005"
	TransactionCategoryMismatch ErrorCode = "TRANSACTION_006"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists ErrorCode = "CATEGORY_002"
	CategoryInvalidType   ErrorCode = "CATEGORY_003"
	CategoryInUse         ErrorCode = "CATEGORY_004"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound      ErrorCode = "BUDGET_001"
	BudgetInvalidAmount ErrorCode = "BUDGET_002"
	BudgetInvalidPeriod ErrorCode = "BUDGET_003"
)

// Import/export error codes (IMPORT_*)
const (
	ImportMalformedFile ErrorCode = "IMPORT_001"
	ImportInvalidRecord ErrorCode = "IMPORT_002"
	ImportTableFailed   ErrorCode = "IMPORT_003"
)

// Settings error codes (SETTINGS_*)
const (
	SettingsUnknownKey      ErrorCode = "SETTINGS_001"
	SettingsInvalidValue    ErrorCode = "SETTINGS_002"
	SettingsUnknownCurrency ErrorCode = "SETTINGS_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	TransactionNotFound:         "Transaction not found",
	TransactionInvalidAmount:    "Transaction amount must not be negative",
	TransactionInvalidType:      "Transaction type must be income or expense",
	TransactionMissingCategory:  "Transaction category is required",
	TransactionUnknownCategory:  "Transaction category does not exist",
	TransactionCategoryMismatch: "Category is not eligible for this transaction type",

	CategoryNotFound:      "Category not found",
	CategoryAlreadyExists: "A category with this name already exists",
	CategoryInvalidType:   "Category type must be income, expense or both",
	CategoryInUse:         "Category is referenced by existing transactions",

	BudgetNotFound:      "Budget not found",
	BudgetInvalidAmount: "Budget amount must be positive",
	BudgetInvalidPeriod: "Budget period must be weekly, monthly or yearly",

	ImportMalformedFile: "Backup file is not valid JSON or has an unexpected shape",
	ImportInvalidRecord: "Backup file contains an invalid record",
	ImportTableFailed:   "Failed to import one or more tables; prior data is preserved",

	SettingsUnknownKey:      "Unknown preference key",
	SettingsInvalidValue:    "Invalid preference value",
	SettingsUnknownCurrency: "Unknown currency code",

	SystemInternalError:      "An internal error occurred",
	SystemDatabaseError:      "A storage error occurred",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Too many requests, please slow down",
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, exists := errorMessages[code]; exists {
		return message
	}
	return "An unexpected error occurred"
}
