package marketplacehttp

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	httpresponse "github.com/marcheferme/marketplace_service/internal/lib/http"
	"github.com/marcheferme/marketplace_service/pkg/logger"
)

type AddCartItemRequest struct {
	ProductUUID string `json:"product_uuid" validate:"required,uuid4"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	principal := principalFromContext(r.Context())

	cart, err := h.cartService.Cart(r.Context(), principal.UUID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, httpresponse.H{"cart": cart})
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	principal := principalFromContext(r.Context())

	var request AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.log.Error("failed to decode request", logger.Err(err))
		h.writeErrorCode(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	if err := h.validate.Struct(&request); err != nil {
		h.log.Error("failed to validate request", logger.Err(err))
		h.writeErrorCode(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	productUUID, err := uuid.Parse(request.ProductUUID)
	if err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, "BAD_REQUEST", "invalid product_uuid")
		return
	}

	cart, err := h.cartService.AddItem(r.Context(), principal, principal.UUID, productUUID, request.Quantity)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, httpresponse.H{"cart": cart})
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	principal := principalFromContext(r.Context())

	productUUID, err := uuid.Parse(chi.URLParam(r, "productUUID"))
	if err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, "BAD_REQUEST", "invalid product_uuid")
		return
	}

	var request UpdateCartItemRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.log.Error("failed to decode request", logger.Err(err))
		h.writeErrorCode(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	if err = h.validate.Struct(&request); err != nil {
		h.log.Error("failed to validate request", logger.Err(err))
		h.writeErrorCode(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	cart, err := h.cartService.UpdateQuantity(r.Context(), principal, principal.UUID, productUUID, request.Quantity)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, httpresponse.H{"cart": cart})
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	principal := principalFromContext(r.Context())

	productUUID, err := uuid.Parse(chi.URLParam(r, "productUUID"))
	if err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, "BAD_REQUEST", "invalid product_uuid")
		return
	}

	cart, err := h.cartService.RemoveItem(r.Context(), principal, principal.UUID, productUUID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, httpresponse.H{"cart": cart})
}
