package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// Orders handles mock order placement. Orders are validated against the
// catalog and acknowledged with a generated id, but nothing is persisted.
type Orders struct {
	source CatalogSource
}

// NewOrders creates a new Orders handler group.
func NewOrders(source CatalogSource) *Orders {
	return &Orders{source: source}
}

type orderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type orderRequest struct {
	Items []orderItem `json:"items"`
}

type orderResponse struct {
	OrderID   string  `json:"orderId"`
	Status    string  `json:"status"`
	ItemCount int     `json:"itemCount"`
	Total     float64 `json:"total"`
}

type orderError struct {
	Error string `json:"error"`
}

// Place accepts a cart snapshot and confirms it as a mock order. Every
// item must reference a known product and carry a positive quantity.
func (o *Orders) Place(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, orderError{Error: "invalid request body"})
		return
	}
	if len(req.Items) == 0 {
		writeJSON(w, http.StatusBadRequest, orderError{Error: "order has no items"})
		return
	}

	var (
		count int
		total float64
	)
	for _, item := range req.Items {
		if item.Quantity < 1 {
			writeJSON(w, http.StatusBadRequest, orderError{Error: "quantity must be at least 1"})
			return
		}

		product, err := o.source.ProductByID(r.Context(), item.ProductID)
		if err != nil {
			slog.Error("order product lookup failed", "error", err, "id", item.ProductID)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if product == nil {
			writeJSON(w, http.StatusBadRequest, orderError{Error: "unknown product: " + item.ProductID})
			return
		}

		count += item.Quantity
		total += product.Price * float64(item.Quantity)
	}

	resp := orderResponse{
		OrderID:   uuid.NewString(),
		Status:    "confirmed",
		ItemCount: count,
		Total:     total,
	}

	slog.Info("mock order placed", "order_id", resp.OrderID, "items", resp.ItemCount, "total", resp.Total)
	writeJSON(w, http.StatusCreated, resp)
}
