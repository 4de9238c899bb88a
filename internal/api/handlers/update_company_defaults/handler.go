package update_company_defaults

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/service/defaults"
	"github.com/m04kA/SMC-SchedulerService/internal/service/defaults/models"
)

const (
	msgInvalidCompanyID   = "invalid company id"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidParams      = "invalid defaults parameters"
	msgCompanyNotFound    = "company not found"
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

// Handle PUT /api/v1/companies/{companyId}/defaults
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /companies/{id}/defaults - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	var req models.UpdateDefaultsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /companies/{id}/defaults - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), companyID, &req)
	if err != nil {
		switch {
		case errors.Is(err, defaults.ErrInvalidInput):
			h.logger.Warn("PUT /companies/{id}/defaults - Invalid parameters: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, defaults.ErrCompanyNotFound):
			h.logger.Warn("PUT /companies/{id}/defaults - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		default:
			h.logger.Error("PUT /companies/{id}/defaults - Failed to save defaults: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /companies/{id}/defaults - Defaults saved successfully: company_id=%d", companyID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
