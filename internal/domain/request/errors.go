package request

import "runesse/internal/pkg/errs"

var (
	ErrEmptyProductLink    = errs.Validation("productLink is required")
	ErrProductLinkTooLong  = errs.Validation("productLink is too long")
	ErrNegativePrice       = errs.Validation("checkoutPrice must be zero or greater")
	ErrPriceOutOfRange     = errs.Validation("checkoutPrice must be below 10000000000 with at most 2 decimal places")
	ErrTextTooLong         = errs.Validation("text field exceeds maximum length")
	ErrInvalidTargetStatus = errs.Validation("newStatus must be COMPLETED or CANCELLED")
	ErrUnknownStatus       = errs.New("unknown request status")

	ErrNotAvailable = errs.Mark(errs.New("request is not available to take"), errs.ErrInvalidState)
)
