package list_slots

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/service/slots/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров
// Все параметры опциональны: gigId, companyId, date, dateFrom, dateTo,
// status, withReservations
func ToServiceRequest(query url.Values) (*models.ListSlotsRequest, error) {
	req := &models.ListSlotsRequest{}

	if v := query.Get("gigId"); v != "" {
		gigID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.GigID = &gigID
	}

	if v := query.Get("companyId"); v != "" {
		companyID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CompanyID = &companyID
	}

	if v := query.Get("date"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if v := query.Get("dateFrom"); v != "" {
		dateFrom, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.DateFrom = &dateFrom
	}

	if v := query.Get("dateTo"); v != "" {
		dateTo, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.DateTo = &dateTo
	}

	if v := query.Get("status"); v != "" {
		status := v
		req.Status = &status
	}

	if v := query.Get("withReservations"); v != "" {
		withReservations, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		req.WithReservations = withReservations
	}

	return req, nil
}
