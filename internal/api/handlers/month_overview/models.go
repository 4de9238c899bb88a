package month_overview

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	monthOverview "github.com/m04kA/SMC-SchedulerService/internal/usecase/month_overview"
)

const monthFormat = "2006-01"

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Month string              `json:"month"` // "2026-03"
	Weeks [][]DayCellResponse `json:"weeks"`
}

// DayCellResponse одна ячейка календарной сетки
type DayCellResponse struct {
	Date          string `json:"date"` // "2026-03-15"
	InMonth       bool   `json:"inMonth"`
	ReservedSlots int    `json:"reservedSlots"`
	OpenSlots     int    `json:"openSlots"`
	Selected      bool   `json:"selected"`
}

// ToUseCaseRequest собирает запрос к use case из query параметров
// month обязателен (YYYY-MM), gigId, companyId и selected опциональны
func ToUseCaseRequest(query url.Values) (*monthOverview.Request, error) {
	month, err := time.Parse(monthFormat, query.Get("month"))
	if err != nil {
		return nil, err
	}

	req := &monthOverview.Request{Month: month}

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

	if v := query.Get("selected"); v != "" {
		selected, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.Selected = &selected
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *monthOverview.Response) *CalendarResponse {
	weeks := make([][]DayCellResponse, 0, len(resp.Weeks))
	for _, week := range resp.Weeks {
		cells := make([]DayCellResponse, 0, len(week))
		for _, cell := range week {
			cells = append(cells, DayCellResponse{
				Date:          cell.Date.Format(domain.DateFormat),
				InMonth:       cell.InMonth,
				ReservedSlots: cell.ReservedSlots,
				OpenSlots:     cell.OpenSlots,
				Selected:      cell.Selected,
			})
		}
		weeks = append(weeks, cells)
	}

	return &CalendarResponse{
		Month: resp.Month.Format(monthFormat),
		Weeks: weeks,
	}
}
