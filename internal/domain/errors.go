package domain

import "errors"

var (
	ErrNotOwner           = errors.New("song does not belong to artist")
	ErrQuotaExceeded      = errors.New("registration quota exceeded")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrTierOverlap        = errors.New("commission tiers overlap")
	ErrTierGap            = errors.New("commission tiers have a gap")
	ErrTierUnbounded      = errors.New("last commission tier must be unbounded")
	ErrOutOfStock         = errors.New("insufficient stock")
	ErrGateway            = errors.New("payment gateway failure")
	ErrOrderNotRefundable = errors.New("order is not refundable")
	ErrRegistrationClosed = errors.New("registration is not pending review")
)
