package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"goflare.io/storefront"
	"goflare.io/storefront/catalog"
	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

type handlers struct {
	svc    storefront.Service
	logger *zap.Logger
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	h.respond(w, http.StatusOK, map[string]string{"status": "ok", "service": "storefront"})
}

func (h *handlers) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "could not load products")
		return
	}
	h.respond(w, http.StatusOK, products)
}

func (h *handlers) getProduct(w http.ResponseWriter, r *http.Request) {
	id := models.ProductID(chi.URLParam(r, "productID"))

	product, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			h.respondError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to get product", zap.String("product_id", string(id)), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "could not load product")
		return
	}
	h.respond(w, http.StatusOK, product)
}

type cartView struct {
	Items   []models.CartLine  `json:"items"`
	Summary models.CartSummary `json:"summary"`
}

func (h *handlers) getCart(w http.ResponseWriter, _ *http.Request) {
	h.respond(w, http.StatusOK, cartView{
		Items:   h.svc.CartItems(),
		Summary: h.svc.CartSummary(),
	})
}

func (h *handlers) cartSummary(w http.ResponseWriter, _ *http.Request) {
	h.respond(w, http.StatusOK, h.svc.CartSummary())
}

func (h *handlers) checkoutHandoff(w http.ResponseWriter, _ *http.Request) {
	h.respond(w, http.StatusOK, h.svc.Checkout())
}

type addItemRequest struct {
	ProductID models.ProductID `json:"productId"`
	Quantity  int              `json:"quantity"`
}

func (h *handlers) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		h.respondError(w, http.StatusBadRequest, "productId is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.svc.AddToCart(r.Context(), req.ProductID, req.Quantity); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			h.respondError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to add item to cart", zap.String("product_id", string(req.ProductID)), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "could not add item")
		return
	}

	h.respond(w, http.StatusOK, h.svc.CartSummary())
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *handlers) updateQuantity(w http.ResponseWriter, r *http.Request) {
	id := models.ProductID(chi.URLParam(r, "productID"))

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "quantity is required")
		return
	}

	if err := h.svc.UpdateCartQuantity(r.Context(), id, req.Quantity); err != nil {
		h.logger.Error("Failed to update quantity", zap.String("product_id", string(id)), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "could not update quantity")
		return
	}

	h.respond(w, http.StatusOK, h.svc.CartSummary())
}

func (h *handlers) removeItem(w http.ResponseWriter, r *http.Request) {
	id := models.ProductID(chi.URLParam(r, "productID"))

	if err := h.svc.RemoveFromCart(r.Context(), id); err != nil {
		h.logger.Error("Failed to remove item", zap.String("product_id", string(id)), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "could not remove item")
		return
	}

	h.respond(w, http.StatusOK, h.svc.CartSummary())
}

func (h *handlers) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.EmptyCart(r.Context()); err != nil {
		h.logger.Error("Failed to clear cart", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "could not clear cart")
		return
	}

	h.respond(w, http.StatusOK, h.svc.CartSummary())
}

type themeView struct {
	Theme enum.ThemeMode `json:"theme"`
}

// getTheme resolves the effective theme. The client reports its system
// preference via the prefersDark query parameter; a saved choice wins.
func (h *handlers) getTheme(w http.ResponseWriter, r *http.Request) {
	prefersDark, _ := strconv.ParseBool(r.URL.Query().Get("prefersDark"))
	h.respond(w, http.StatusOK, themeView{Theme: h.svc.ResolveTheme(r.Context(), prefersDark)})
}

func (h *handlers) setTheme(w http.ResponseWriter, r *http.Request) {
	var req themeView
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "theme is required")
		return
	}

	if err := h.svc.SetTheme(r.Context(), req.Theme); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respond(w, http.StatusOK, req)
}

func (h *handlers) submitContact(w http.ResponseWriter, r *http.Request) {
	var msg models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid contact payload")
		return
	}

	if err := msg.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ack, err := h.svc.SubmitContact(r.Context(), msg)
	if err != nil {
		h.logger.Error("Failed to submit contact message", zap.Error(err))
		h.respondError(w, http.StatusBadGateway, "could not deliver message")
		return
	}

	response := map[string]string{}
	if ack != "" {
		response["message"] = ack
	}
	h.respond(w, http.StatusOK, response)
}

func (h *handlers) respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *handlers) respondError(w http.ResponseWriter, status int, message string) {
	h.respond(w, status, map[string]string{"error": message})
}
