package gigservice

import "github.com/m04kA/SMC-SchedulerService/internal/domain"

// Gig модель гига из GigService
type Gig struct {
	ID          int64    `json:"id"`
	CompanyID   int64    `json:"companyId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
	Skills      []string `json:"skills"`
	Priority    int      `json:"priority"`
}

// ToDomain конвертирует в domain модель
func (g *Gig) ToDomain() *domain.Gig {
	return &domain.Gig{
		ID:          g.ID,
		CompanyID:   g.CompanyID,
		Name:        g.Name,
		Description: g.Description,
		Color:       g.Color,
		Skills:      g.Skills,
		Priority:    g.Priority,
	}
}

// Company модель компании из GigService
type Company struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Priority *int   `json:"priority,omitempty"`
}

// ToDomain конвертирует в domain модель
func (c *Company) ToDomain() *domain.Company {
	return &domain.Company{
		ID:       c.ID,
		Name:     c.Name,
		Priority: c.Priority,
	}
}

// ErrorResponse модель ошибки от GigService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
