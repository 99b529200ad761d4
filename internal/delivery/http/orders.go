package marketplacehttp

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/marcheferme/marketplace_service/internal/domain/models"
	httpresponse "github.com/marcheferme/marketplace_service/internal/lib/http"
	"github.com/marcheferme/marketplace_service/pkg/logger"
)

type UpdateLineStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// orderView adds the derived status to the serialized order.
type orderView struct {
	*models.Order
	Status models.OrderStatus `json:"status"`
}

func newOrderView(order *models.Order) orderView {
	return orderView{Order: order, Status: order.Status()}
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	principal := principalFromContext(r.Context())

	order, err := h.orderCreator.Create(r.Context(), principal, principal.UUID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, httpresponse.H{"order": newOrderView(order)})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	principal := principalFromContext(r.Context())

	orders, err := h.orderRetriever.Orders(r.Context(), principal)
	if err != nil {
		h.writeError(w, err)
		return
	}

	views := make([]orderView, 0, len(orders))
	for i := range orders {
		views = append(views, newOrderView(&orders[i]))
	}

	h.writeJSON(w, http.StatusOK, httpresponse.H{"orders": views})
}

func (h *Handler) updateLineStatus(w http.ResponseWriter, r *http.Request) {
	principal := principalFromContext(r.Context())

	orderUUID, err := uuid.Parse(chi.URLParam(r, "orderUUID"))
	if err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, "BAD_REQUEST", "invalid order_uuid")
		return
	}

	productUUID, err := uuid.Parse(chi.URLParam(r, "productUUID"))
	if err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, "BAD_REQUEST", "invalid product_uuid")
		return
	}

	var request UpdateLineStatusRequest
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

	newStatus, ok := models.ParseLineStatus(request.Status)
	if !ok {
		h.writeErrorCode(w, http.StatusBadRequest, "BAD_REQUEST", "unknown status: "+request.Status)
		return
	}

	if err = h.lineStatusUpdater.UpdateLineStatus(r.Context(), principal, orderUUID, productUUID, newStatus); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, httpresponse.H{"message": "line status updated"})
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	principal := principalFromContext(r.Context())

	orderUUID, err := uuid.Parse(chi.URLParam(r, "orderUUID"))
	if err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, "BAD_REQUEST", "invalid order_uuid")
		return
	}

	if err = h.orderCanceller.Cancel(r.Context(), principal, orderUUID); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, httpresponse.H{"message": "order cancelled"})
}
