package get_company_defaults

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/service/defaults"
)

const (
	msgInvalidCompanyID = "invalid company id"
	msgCompanyNotFound  = "company not found"
)

type Handler struct {
	service DefaultsService
	logger  Logger
}

func NewHandler(service DefaultsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/defaults
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/defaults - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	result, err := h.service.Get(r.Context(), companyID)
	if err != nil {
		switch {
		case errors.Is(err, defaults.ErrCompanyNotFound):
			h.logger.Warn("GET /companies/{id}/defaults - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		default:
			h.logger.Error("GET /companies/{id}/defaults - Failed to get defaults: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /companies/{id}/defaults - Defaults retrieved successfully: company_id=%d, stored=%v",
		companyID, result.Stored)
	handlers.RespondJSON(w, http.StatusOK, result)
}
