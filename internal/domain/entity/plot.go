package entity

import "time"

// Plot is a parcel of land whose area is sold fractionally.
type Plot struct {
	ID            string
	Name          string
	ProjectID     string
	TotalArea     float64
	AvailableArea float64
	TotalOwners   int
	UpdatedAt     time.Time
}

// AllocateArea removes area from the available inventory and counts a new owner.
// Available area never drops below zero.
func (p *Plot) AllocateArea(area float64, at time.Time) {
	p.AvailableArea = max(p.AvailableArea-area, 0)
	p.TotalOwners++
	p.UpdatedAt = at
}
