package domain

// Gig represents the unit of work slots belong to.
// Canonical gig data is owned by GigService.
type Gig struct {
	ID          int64
	CompanyID   int64
	Name        string
	Description string
	Color       string
	Skills      []string
	Priority    int
}

// Company is the aggregation root for reporting
type Company struct {
	ID       int64
	Name     string
	Priority *int
}
