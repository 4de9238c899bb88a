package reserve_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	reserveSlot "github.com/m04kA/SMC-SchedulerService/internal/usecase/reserve_slot"
)

const (
	msgInvalidSlotID      = "invalid slot id"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidAgentID     = "agent id is required"
	msgSlotNotFound       = "slot not found"
	msgSlotCancelled      = "slot is cancelled"
	msgSlotFull           = "slot is fully booked"
)

type Handler struct {
	useCase ReserveSlotUseCase
	logger  Logger
}

func NewHandler(useCase ReserveSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/reserve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /slots/{id}/reserve - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req ReserveSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/{id}/reserve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &reserveSlot.Request{
		SlotID:  slotID,
		AgentID: req.AgentID,
		Notes:   req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, reserveSlot.ErrInvalidInput):
			h.logger.Warn("POST /slots/{id}/reserve - Invalid input: slot_id=%d, agent_id=%d", slotID, req.AgentID)
			handlers.RespondBadRequest(w, msgInvalidAgentID)

		case errors.Is(err, reserveSlot.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{id}/reserve - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, reserveSlot.ErrSlotCancelled):
			h.logger.Warn("POST /slots/{id}/reserve - Slot cancelled: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotCancelled)

		case errors.Is(err, reserveSlot.ErrSlotFull):
			h.logger.Warn("POST /slots/{id}/reserve - Slot full: slot_id=%d, agent_id=%d", slotID, req.AgentID)
			handlers.RespondConflict(w, msgSlotFull)

		default:
			h.logger.Error("POST /slots/{id}/reserve - Failed to reserve slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{id}/reserve - Slot reserved successfully: slot_id=%d, agent_id=%d, reservation_id=%d",
		slotID, req.AgentID, result.Reservation.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
