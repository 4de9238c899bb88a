package generate_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	generateSlots "github.com/m04kA/SMC-SchedulerService/internal/usecase/generate_slots"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgGigRequired        = "gig required"
	msgInvalidDateRange   = "end date must be after start date"
	msgInvalidHourRange   = "end hour must be after start hour"
	msgInvalidDuration    = "invalid slot duration"
	msgInvalidCapacity    = "invalid capacity"
	msgInvalidParams      = "invalid generation parameters"
	msgGigNotFound        = "gig not found"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /slots/generate - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrGigRequired):
			h.logger.Warn("POST /slots/generate - Gig required")
			handlers.RespondBadRequest(w, msgGigRequired)

		case errors.Is(err, generateSlots.ErrInvalidDateRange):
			h.logger.Warn("POST /slots/generate - Invalid date range: gig_id=%d", req.GigID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, generateSlots.ErrInvalidHourRange):
			h.logger.Warn("POST /slots/generate - Invalid hour range: gig_id=%d", req.GigID)
			handlers.RespondBadRequest(w, msgInvalidHourRange)

		case errors.Is(err, generateSlots.ErrInvalidDuration):
			h.logger.Warn("POST /slots/generate - Invalid duration: gig_id=%d", req.GigID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, generateSlots.ErrInvalidCapacity):
			h.logger.Warn("POST /slots/generate - Invalid capacity: gig_id=%d", req.GigID)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		case errors.Is(err, generateSlots.ErrInvalidInput):
			h.logger.Warn("POST /slots/generate - Invalid input: gig_id=%d, error=%v", req.GigID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, generateSlots.ErrGigNotFound):
			h.logger.Warn("POST /slots/generate - Gig not found: gig_id=%d", req.GigID)
			handlers.RespondNotFound(w, msgGigNotFound)

		default:
			h.logger.Error("POST /slots/generate - Failed to generate slots: gig_id=%d, error=%v", req.GigID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/generate - Slots generated successfully: gig_id=%d, created=%d",
		req.GigID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
