package ds

import "time"

// ShipDraft is a ship with optional fields. A nil field is absent; a
// non-nil pointer to a zero value is an explicit value.
// It is used both as a creation candidate and as an update patch.
type ShipDraft struct {
	Name     *string    `validate:"omitnil,min=1,max=50"`
	Planet   *string    `validate:"omitnil,min=1,max=50"`
	ShipType *ShipType  `validate:"omitnil,shiptype"`
	ProdDate *time.Time `validate:"omitnil,prodyear"`
	IsUsed   *bool
	Speed    *float64 `validate:"omitnil,gte=0.01,lte=0.99"`
	CrewSize *int     `validate:"omitnil,gte=1,lte=9999"`
	// Rating is accepted so a body carrying only a rating is not empty,
	// but it is never written to a stored ship.
	Rating *float64
}

// Empty reports whether every field is absent.
func (d *ShipDraft) Empty() bool {
	return d == nil || (d.Name == nil &&
		d.Planet == nil &&
		d.ShipType == nil &&
		d.ProdDate == nil &&
		d.IsUsed == nil &&
		d.Speed == nil &&
		d.CrewSize == nil &&
		d.Rating == nil)
}

// Matches reports whether every field is present and equal to the
// corresponding field of s.
func (d *ShipDraft) Matches(s Ship) bool {
	if d == nil {
		return false
	}
	return d.Name != nil && *d.Name == s.Name &&
		d.Planet != nil && *d.Planet == s.Planet &&
		d.ShipType != nil && *d.ShipType == s.ShipType &&
		d.ProdDate != nil && d.ProdDate.Equal(s.ProdDate) &&
		d.IsUsed != nil && *d.IsUsed == s.IsUsed &&
		d.Speed != nil && *d.Speed == s.Speed &&
		d.CrewSize != nil && *d.CrewSize == s.CrewSize &&
		d.Rating != nil && *d.Rating == s.Rating
}
