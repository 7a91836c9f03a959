package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/metalaloud/royalty-service/internal/delivery/http/dto/request"
	"github.com/metalaloud/royalty-service/internal/delivery/http/dto/response"
	"github.com/metalaloud/royalty-service/internal/domain"
	paymentdto "github.com/metalaloud/royalty-service/internal/usecase/dto/payment"
	paymentuc "github.com/metalaloud/royalty-service/internal/usecase/payment"
)

type PaymentHandler struct {
	uc paymentuc.PaymentUsecase
}

func NewPaymentHandler(uc paymentuc.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

func (h *PaymentHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req request.ProcessPaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	items := make([]paymentdto.ItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = paymentdto.ItemInput{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	out, err := h.uc.ProcessPayment(r.Context(), &paymentdto.ProcessPaymentInput{
		UserID: req.UserID,
		Amount: req.Amount,
		Card: domain.CardDetails{
			Number:      req.Card.Number,
			ExpiryMonth: req.Card.ExpiryMonth,
			ExpiryYear:  req.Card.ExpiryYear,
			CVV:         req.Card.CVV,
			HolderName:  req.Card.HolderName,
		},
		Items: items,
		ShippingAddress: domain.ShippingAddress{
			FullName:   req.ShippingAddress.FullName,
			Street:     req.ShippingAddress.Street,
			City:       req.ShippingAddress.City,
			PostalCode: req.ShippingAddress.PostalCode,
			Country:    req.ShippingAddress.Country,
		},
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.PaymentResponse{
		Success:       true,
		OrderID:       out.OrderID,
		TransactionID: out.TransactionID,
		TotalAmount:   out.TotalAmount,
	})
}

func (h *PaymentHandler) RefundOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.RefundOrder(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PaymentHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: "user_id is required"})
		return
	}

	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	out, err := h.uc.ListOrders(r.Context(), &paymentdto.ListOrdersInput{
		UserID: userID,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	body := response.OrderListResponse{
		Orders: make([]response.OrderResponse, len(out.Orders)),
		Total:  out.Total,
	}
	for i, order := range out.Orders {
		body.Orders[i] = toOrderResponse(order)
	}
	writeJSON(w, http.StatusOK, body)
}

func (h *PaymentHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.uc.GetOrderByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func toOrderResponse(order *domain.Order) response.OrderResponse {
	items := make([]response.OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = response.OrderItemResponse{
			ProductID:   item.ProductID,
			ArtistID:    item.ArtistID,
			Quantity:    item.Quantity,
			PriceAtTime: item.PriceAtTime,
		}
	}
	return response.OrderResponse{
		ID:          order.ID,
		UserID:      order.UserID,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		Items:       items,
		CreatedAt:   order.CreatedAt,
	}
}
