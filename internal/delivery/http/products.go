package marketplacehttp

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	httpresponse "github.com/marcheferme/marketplace_service/internal/lib/http"
	"github.com/marcheferme/marketplace_service/pkg/logger"
)

// AdjustStockRequest carries a signed stock correction. A zero delta is
// rejected as meaningless.
type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}

func (h *Handler) adjustStock(w http.ResponseWriter, r *http.Request) {
	principal := principalFromContext(r.Context())

	productUUID, err := uuid.Parse(chi.URLParam(r, "productUUID"))
	if err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, "BAD_REQUEST", "invalid product_uuid")
		return
	}

	var request AdjustStockRequest
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

	if err = h.stockAdjuster.AdjustStock(r.Context(), principal, productUUID, request.Delta); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, httpresponse.H{"message": "stock adjusted"})
}
