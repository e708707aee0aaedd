package handler

import (
	"errors"
	"net/http"

	"custodian/internal/core"
	"custodian/internal/envelope"
	"custodian/internal/hdwallet"
	"custodian/internal/ledger"
	"custodian/internal/verification"
)

// statusFor maps error kinds from the core services to HTTP status codes.
// Anything unknown is a 500 and its detail is not exposed.
func statusFor(err error) (int, bool) {
	switch {
	case errors.Is(err, envelope.ErrConfiguration):
		return http.StatusServiceUnavailable, false
	case errors.Is(err, envelope.ErrIntegrity),
		errors.Is(err, hdwallet.ErrDerivationMismatch):
		return http.StatusInternalServerError, false
	case errors.Is(err, hdwallet.ErrNoMnemonic):
		return http.StatusConflict, true
	case errors.Is(err, hdwallet.ErrRateLimited):
		return http.StatusTooManyRequests, true
	case errors.Is(err, hdwallet.ErrConfirmationRequired),
		errors.Is(err, core.ErrAddressNotOwned):
		return http.StatusForbidden, true
	case errors.Is(err, hdwallet.ErrAddressNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, ledger.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity, true
	case errors.Is(err, verification.ErrVerification),
		errors.Is(err, hdwallet.ErrUnsupported),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidSwap),
		errors.Is(err, ledger.ErrUnknownType),
		errors.Is(err, core.ErrInvalidSettlement),
		errors.Is(err, core.ErrOnChainRequired):
		return http.StatusBadRequest, true
	case errors.Is(err, verification.ErrNotConfigured):
		return http.StatusServiceUnavailable, true
	default:
		return http.StatusInternalServerError, false
	}
}
