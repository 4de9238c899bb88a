package month_overview

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	monthOverview "github.com/m04kA/SMC-SchedulerService/internal/usecase/month_overview"
)

const (
	msgInvalidParams = "invalid query parameters, month is required as YYYY-MM"
)

type Handler struct {
	useCase MonthOverviewUseCase
	logger  Logger
}

func NewHandler(useCase MonthOverviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/calendar
// Query params: month (обязателен, YYYY-MM), gigId, companyId, selected
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /slots/calendar - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, monthOverview.ErrInvalidInput):
			h.logger.Warn("GET /slots/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /slots/calendar - Failed to build calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/calendar - Calendar built successfully: month=%s, weeks=%d",
		result.Month.Format("2006-01"), len(result.Weeks))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
