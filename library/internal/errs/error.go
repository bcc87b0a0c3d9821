package errs

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")

	// Borrow lifecycle conflicts.
	ErrNotAvailable     = errors.New("book is not available for borrowing")
	ErrDuplicateRequest = errors.New("pending or active borrow request already exists for this book")
	ErrNotPending       = errors.New("only pending requests can be processed")
	ErrNotBorrowed      = errors.New("only currently borrowed books can be processed")
	ErrUnpaidFines      = errors.New("user has outstanding fines")

	// Fine conflicts.
	ErrAlreadyPaid = errors.New("fine is already paid")
	ErrFinePaid    = errors.New("cannot delete a paid fine")

	// Catalog conflicts.
	ErrAlreadyExists    = errors.New("already exists")
	ErrInUse            = errors.New("still referenced by other records")
	ErrInvalidInventory = errors.New("total must equal available + borrowed + damaged + lost")
	ErrActiveBorrows    = errors.New("book has active borrow records")

	// Reviews.
	ErrNotReturned     = errors.New("only borrowed and returned books can be reviewed")
	ErrAlreadyReviewed = errors.New("book already reviewed")

	ErrPermission = errors.New("no permission")
)
