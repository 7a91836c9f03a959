package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/metalaloud/royalty-service/internal/delivery/http/dto/request"
	"github.com/metalaloud/royalty-service/internal/delivery/http/dto/response"
	"github.com/metalaloud/royalty-service/internal/domain"
	copyrightuc "github.com/metalaloud/royalty-service/internal/usecase/copyright"
	copyrightdto "github.com/metalaloud/royalty-service/internal/usecase/dto/copyright"
)

type CopyrightHandler struct {
	uc copyrightuc.CopyrightUsecase
}

func NewCopyrightHandler(uc copyrightuc.CopyrightUsecase) *CopyrightHandler {
	return &CopyrightHandler{uc: uc}
}

func (h *CopyrightHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterCopyrightRequest
	if !decodeBody(w, r, &req) {
		return
	}

	regType := domain.RegistrationType(req.Type)
	if regType != domain.RegistrationAutomatic && regType != domain.RegistrationManual {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: "type must be automatic or manual"})
		return
	}

	registration, err := h.uc.RegisterCopyright(r.Context(), &copyrightdto.RegisterCopyrightInput{
		SongID:          req.SongID,
		ArtistID:        req.ArtistID,
		Type:            regType,
		UseSubscription: req.UseSubscription,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCopyrightResponse(registration))
}

func (h *CopyrightHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req request.ReviewCopyrightRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.uc.ReviewRegistration(r.Context(), &copyrightdto.ReviewRegistrationInput{
		RegistrationID: mux.Vars(r)["id"],
		Approve:        req.Approve,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CopyrightHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	registration, err := h.uc.GetRegistrationByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCopyrightResponse(registration))
}

func (h *CopyrightHandler) List(w http.ResponseWriter, r *http.Request) {
	artistID := r.URL.Query().Get("artist_id")
	songID := r.URL.Query().Get("song_id")
	if artistID == "" && songID == "" {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: "either song_id or artist_id is required"})
		return
	}

	out, err := h.uc.ListRegistrations(r.Context(), &copyrightdto.ListRegistrationsInput{
		ArtistID: artistID,
		SongID:   songID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	body := response.CopyrightListResponse{
		Registrations: make([]response.CopyrightResponse, len(out.Registrations)),
	}
	for i, registration := range out.Registrations {
		body.Registrations[i] = toCopyrightResponse(registration)
	}
	writeJSON(w, http.StatusOK, body)
}

func toCopyrightResponse(reg *domain.CopyrightRegistration) response.CopyrightResponse {
	return response.CopyrightResponse{
		ID:               reg.ID,
		SongID:           reg.SongID,
		ArtistID:         reg.ArtistID,
		CopyrightID:      reg.CopyrightID,
		Status:           string(reg.Status),
		Type:             string(reg.Type),
		ProtectionLevel:  string(reg.ProtectionLevel),
		Fingerprint:      reg.Fingerprint,
		ContentHash:      reg.ContentHash,
		BlockchainHash:   reg.BlockchainHash,
		RegistrationDate: reg.RegistrationDate,
		ReviewedAt:       reg.ReviewedAt,
	}
}
