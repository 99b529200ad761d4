package marketplacehttp

import (
	"encoding/json"
	"errors"
	"net/http"

	internalErrors "github.com/marcheferme/marketplace_service/internal/lib/errors"
	httpresponse "github.com/marcheferme/marketplace_service/internal/lib/http"
	"github.com/marcheferme/marketplace_service/pkg/logger"
)

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("failed to encode response", logger.Err(err))
	}
}

func (h *Handler) writeErrorCode(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, httpresponse.H{"code": code, "message": message})
}

// writeError maps the business error taxonomy to stable codes and HTTP
// statuses. Anything outside the taxonomy is an infrastructure failure
// and surfaces as a bare 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	code := internalErrors.Code(err)
	if code == "" {
		h.log.Error("internal error", logger.Err(err))
		h.writeErrorCode(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, internalErrors.ErrProductNotFound),
		errors.Is(err, internalErrors.ErrOrderNotFound),
		errors.Is(err, internalErrors.ErrCartLineNotFound):
		status = http.StatusNotFound
	case errors.Is(err, internalErrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, internalErrors.ErrInsufficientStock),
		errors.Is(err, internalErrors.ErrInvalidTransition),
		errors.Is(err, internalErrors.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, internalErrors.ErrEmptyCart),
		errors.Is(err, internalErrors.ErrInvalidAdjustment):
		status = http.StatusUnprocessableEntity
	}

	h.writeErrorCode(w, status, code, err.Error())
}
