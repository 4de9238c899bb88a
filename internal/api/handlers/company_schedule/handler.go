package company_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	companySchedule "github.com/m04kA/SMC-SchedulerService/internal/usecase/company_schedule"
)

const (
	msgInvalidCompanyID = "invalid company id"
	msgInvalidDate      = "invalid date, expected YYYY-MM-DD"
	msgCompanyNotFound  = "company not found"
)

type Handler struct {
	useCase CompanyScheduleUseCase
	logger  Logger
}

func NewHandler(useCase CompanyScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/schedule
// Query params: date (обязателен)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/schedule - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /companies/{id}/schedule - Invalid date: company_id=%d, error=%v", companyID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &companySchedule.Request{
		CompanyID: companyID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, companySchedule.ErrInvalidInput):
			h.logger.Warn("GET /companies/{id}/schedule - Invalid input: company_id=%d", companyID)
			handlers.RespondBadRequest(w, msgInvalidCompanyID)

		case errors.Is(err, companySchedule.ErrCompanyNotFound):
			h.logger.Warn("GET /companies/{id}/schedule - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		default:
			h.logger.Error("GET /companies/{id}/schedule - Failed to build schedule: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /companies/{id}/schedule - Schedule built successfully: company_id=%d, reps=%d",
		companyID, len(result.Reps))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
