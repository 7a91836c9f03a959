package handlers

import (
	"net/http"
	"strconv"

	"github.com/metalaloud/royalty-service/internal/delivery/http/dto/request"
	"github.com/metalaloud/royalty-service/internal/delivery/http/dto/response"
	"github.com/metalaloud/royalty-service/internal/domain"
	royalty "github.com/metalaloud/royalty-service/internal/usecase"
)

type CommissionHandler struct {
	uc royalty.CommissionUsecase
}

func NewCommissionHandler(uc royalty.CommissionUsecase) *CommissionHandler {
	return &CommissionHandler{uc: uc}
}

func (h *CommissionHandler) ListTiers(w http.ResponseWriter, r *http.Request) {
	tiers, err := h.uc.ListTiers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	body := response.TierListResponse{Tiers: make([]response.TierResponse, len(tiers))}
	for i, tier := range tiers {
		body.Tiers[i] = response.TierResponse{
			ID:          tier.ID,
			MinAmount:   tier.MinAmount,
			MaxAmount:   tier.MaxAmount,
			RatePercent: tier.RatePercent,
			Active:      tier.Active,
		}
	}
	writeJSON(w, http.StatusOK, body)
}

func (h *CommissionHandler) ReplaceTiers(w http.ResponseWriter, r *http.Request) {
	var req request.ReplaceTiersRequest
	if !decodeBody(w, r, &req) {
		return
	}

	tiers := make([]*domain.CommissionTier, len(req.Tiers))
	for i, payload := range req.Tiers {
		tiers[i] = &domain.CommissionTier{
			ID:          payload.ID,
			MinAmount:   payload.MinAmount,
			MaxAmount:   payload.MaxAmount,
			RatePercent: payload.RatePercent,
			Active:      payload.Active,
		}
	}

	if err := h.uc.ReplaceTiers(r.Context(), tiers); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CommissionHandler) ResolveRate(w http.ResponseWriter, r *http.Request) {
	amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
	if err != nil || amount < 0 {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: "amount must be a non-negative number"})
		return
	}

	net, rate, err := h.uc.NetEarnings(r.Context(), amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.ResolveRateResponse{
		Amount:      amount,
		RatePercent: rate,
		NetEarnings: net,
	})
}
