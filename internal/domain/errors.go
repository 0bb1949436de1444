package domain

import "errors"

// Domain errors surfaced by ledger and account operations. Callers are
// expected to match them with errors.Is and decide on recovery themselves;
// nothing in this package retries.
var (
	// ErrAccountNotFound is returned when no account carries the requested number.
	ErrAccountNotFound = errors.New("account does not exist")

	// ErrUserNotFound is returned when no person is registered under the requested name.
	ErrUserNotFound = errors.New("user does not exist")

	// ErrNotAHolder is returned when the acting person is not a holder of the account.
	ErrNotAHolder = errors.New("name is not associated with the account")

	// ErrNotAuthenticated is returned when the acting person is not logged in.
	ErrNotAuthenticated = errors.New("user is not logged in")

	// ErrOverdraftNotAllowed is returned when a withdrawal exceeds the balance
	// and the account does not permit overdrafts.
	ErrOverdraftNotAllowed = errors.New("no overdraft on this account")

	// ErrCreditLimitExceeded is returned when a purchase exceeds the available credit.
	ErrCreditLimitExceeded = errors.New("credit limit has been exceeded")

	// ErrIncorrectPassword is returned on a login credential mismatch.
	ErrIncorrectPassword = errors.New("password incorrect")

	// ErrDuplicateName is returned when registering a person under a name
	// already present in the registry.
	ErrDuplicateName = errors.New("person name already registered")

	// ErrDuplicateAccount is returned when registering an account whose number
	// is already present in the registry.
	ErrDuplicateAccount = errors.New("account number already registered")
)
