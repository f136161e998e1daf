package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project groups plots and tracks revenue.
type Project struct {
	ID             string
	Name           string
	TotalRevenue   decimal.Decimal
	TotalInvestors int
	UpdatedAt      time.Time
}

// RecordInvestment adds an approved investment to the project totals.
func (p *Project) RecordInvestment(amount decimal.Decimal, at time.Time) {
	p.TotalRevenue = p.TotalRevenue.Add(amount)
	p.TotalInvestors++
	p.UpdatedAt = at
}
