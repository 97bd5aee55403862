package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrUserNotFound indicates that a user with the given ID does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrFundNotFound indicates that a fund with the given ID does not exist.
	ErrFundNotFound = errors.New("fund not found")

	// ErrCapTypeNotFound indicates that a cap type with the given ID does not exist.
	ErrCapTypeNotFound = errors.New("cap type not found")

	// ErrFundEntryNotFound indicates that a fund entry with the given ID does not exist.
	ErrFundEntryNotFound = errors.New("fund entry not found")

	// ErrFundNavNotFound indicates no NAV record for a specific fund.
	ErrFundNavNotFound = errors.New("fund nav not found")

	// ErrSIPNotFound indicates that a SIP record with the given ID does not exist.
	ErrSIPNotFound = errors.New("sip not found")

	// ErrPFTypeNotFound indicates that a provident fund type does not exist.
	ErrPFTypeNotFound = errors.New("provident fund type not found")

	// ErrPFEntryNotFound indicates that a provident fund entry does not exist.
	ErrPFEntryNotFound = errors.New("provident fund entry not found")

	// ErrInterestRateNotFound indicates that an interest rate window does not exist.
	ErrInterestRateNotFound = errors.New("interest rate not found")

	// ErrGoldEntryNotFound indicates that a gold entry with the given ID does not exist.
	ErrGoldEntryNotFound = errors.New("gold entry not found")

	// ErrGoldPriceNotFound indicates no gold price has been recorded yet.
	ErrGoldPriceNotFound = errors.New("gold price not found")

	// ErrProviderConfigNotFound indicates the NAV provider has not been configured.
	ErrProviderConfigNotFound = errors.New("provider configuration not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrDuplicateEntry indicates that an entity with the same unique constraint already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrCapTypeInUse indicates that a cap type cannot be deleted because funds reference it.
	ErrCapTypeInUse = errors.New("cap type is in use")

	// ErrFundInUse indicates that a fund cannot be deleted because entries reference it.
	ErrFundInUse = errors.New("fund is in use")

	// ErrLedgerAlreadySetUp indicates that a provident fund ledger already has entries
	// and cannot be bulk-initialized again.
	ErrLedgerAlreadySetUp = errors.New("ledger already set up")

	// ErrNonContiguousRate indicates that a new interest rate window does not start
	// the day after the previous window ends.
	ErrNonContiguousRate = errors.New("interest rate window is not contiguous")

	// ErrProviderDisabled indicates a price refresh was requested while the
	// NAV provider is disabled.
	ErrProviderDisabled = errors.New("nav provider is disabled")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
// These errors indicate that an operation failed, but not due to missing entities or validation issues.
var (
	// Fund operation errors
	ErrFailedToRetrieveFunds     = errors.New("failed to retrieve funds")
	ErrFailedToRetrieveEntries   = errors.New("failed to retrieve fund entries")
	ErrFailedToRetrieveSummaries = errors.New("failed to retrieve fund summaries")

	// Provident fund operation errors
	ErrFailedToRecalculate = errors.New("failed to recalculate ledger")

	// Price operation errors
	ErrFailedToRefreshPrices = errors.New("failed to refresh prices")
)

// Data integrity errors represent inconsistencies or corruption in the data.
var (
	// ErrDataInconsistency indicates that the data is in an inconsistent state
	// (e.g., a fund entry exists but the fund doesn't exist).
	ErrDataInconsistency = errors.New("data inconsistency detected")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")
)
