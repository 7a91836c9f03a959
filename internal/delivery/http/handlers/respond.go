package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/metalaloud/royalty-service/internal/delivery/http/dto/response"
	"github.com/metalaloud/royalty-service/internal/domain"
	"gorm.io/gorm"
)

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

// writeError maps domain errors onto HTTP statuses. Unknown errors are
// reported as 500 without leaking internals beyond the message.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	category := ""

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		category = string(verr.Category)
		switch verr.Category {
		case domain.CategoryStock:
			status = http.StatusConflict
		case domain.CategoryGateway:
			status = http.StatusBadGateway
		default:
			status = http.StatusBadRequest
		}
	case errors.Is(err, domain.ErrNotOwner):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrQuotaExceeded):
		status = http.StatusTooManyRequests
	case errors.Is(err, domain.ErrInsufficientFunds):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrGateway):
		status = http.StatusBadGateway
		category = string(domain.CategoryGateway)
	case errors.Is(err, domain.ErrOutOfStock):
		status = http.StatusConflict
		category = string(domain.CategoryStock)
	case errors.Is(err, domain.ErrTierOverlap),
		errors.Is(err, domain.ErrTierGap),
		errors.Is(err, domain.ErrTierUnbounded),
		errors.Is(err, domain.ErrOrderNotRefundable),
		errors.Is(err, domain.ErrRegistrationClosed):
		status = http.StatusBadRequest
	case errors.Is(err, gorm.ErrRecordNotFound):
		status = http.StatusNotFound
	}

	writeJSON(w, status, response.ErrorResponse{Error: err.Error(), Category: category})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
