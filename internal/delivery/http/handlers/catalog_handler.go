package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/metalaloud/royalty-service/internal/delivery/http/dto/request"
	"github.com/metalaloud/royalty-service/internal/delivery/http/dto/response"
	"github.com/metalaloud/royalty-service/internal/domain"
	royalty "github.com/metalaloud/royalty-service/internal/usecase"
	catalogdto "github.com/metalaloud/royalty-service/internal/usecase/dto/catalog"
)

type CatalogHandler struct {
	uc royalty.CatalogUsecase
}

func NewCatalogHandler(uc royalty.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProductRequest
	if !decodeBody(w, r, &req) {
		return
	}

	product, err := h.uc.CreateProduct(r.Context(), &catalogdto.CreateProductInput{
		ArtistID:      req.ArtistID,
		Name:          req.Name,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Category:      req.Category,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProductResponse(product))
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.uc.GetProductByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateProductRequest
	if !decodeBody(w, r, &req) {
		return
	}

	product, err := h.uc.UpdateProduct(r.Context(), &catalogdto.UpdateProductInput{
		ID:            mux.Vars(r)["id"],
		Name:          req.Name,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Category:      req.Category,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *CatalogHandler) CreateSong(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSongRequest
	if !decodeBody(w, r, &req) {
		return
	}

	song, err := h.uc.CreateSong(r.Context(), &catalogdto.CreateSongInput{
		ArtistID: req.ArtistID,
		Title:    req.Title,
		Genre:    req.Genre,
		AudioURL: req.AudioURL,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, response.SongResponse{
		ID:        song.ID,
		ArtistID:  song.ArtistID,
		Title:     song.Title,
		Genre:     song.Genre,
		AudioURL:  song.AudioURL,
		CreatedAt: song.CreatedAt,
	})
}

func toProductResponse(product *domain.Product) response.ProductResponse {
	return response.ProductResponse{
		ID:            product.ID,
		ArtistID:      product.ArtistID,
		Name:          product.Name,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		Category:      product.Category,
	}
}
