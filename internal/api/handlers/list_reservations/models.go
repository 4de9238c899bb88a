package list_reservations

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-SchedulerService/internal/service/slots/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров
// Все параметры опциональны: agentId, gigId, slotId, status
func ToServiceRequest(query url.Values) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{}

	if v := query.Get("agentId"); v != "" {
		agentID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.AgentID = &agentID
	}

	if v := query.Get("gigId"); v != "" {
		gigID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.GigID = &gigID
	}

	if v := query.Get("slotId"); v != "" {
		slotID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.SlotID = &slotID
	}

	if v := query.Get("status"); v != "" {
		status := v
		req.Status = &status
	}

	return req, nil
}
