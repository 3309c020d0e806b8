package ds

import "time"

type ShipType string

const (
	ShipTypeTransport  ShipType = "TRANSPORT"
	ShipTypeMilitary   ShipType = "MILITARY"
	ShipTypeMerchant   ShipType = "MERCHANT"
	ShipTypeScientific ShipType = "SCIENTIFIC"
)

// ShipTypes lists every accepted ship type.
var ShipTypes = []ShipType{ShipTypeTransport, ShipTypeMilitary, ShipTypeMerchant, ShipTypeScientific}

func (t ShipType) Valid() bool {
	for _, known := range ShipTypes {
		if t == known {
			return true
		}
	}
	return false
}

// @Schema(description="Ship model representing a starship of the fleet")
type Ship struct {
	ID       int64     `gorm:"primaryKey;column:id" json:"id"`
	Name     string    `gorm:"column:name;size:50;not null" json:"name"`
	Planet   string    `gorm:"column:planet;size:50;not null" json:"planet"`
	ShipType ShipType  `gorm:"column:ship_type;size:16;not null" json:"shipType"`
	ProdDate time.Time `gorm:"column:prod_date;not null" json:"prodDate"`
	IsUsed   bool      `gorm:"column:is_used;not null;default:false" json:"isUsed"`
	Speed    float64   `gorm:"column:speed;not null" json:"speed"`
	CrewSize int       `gorm:"column:crew_size;not null" json:"crewSize"`
	Rating   float64   `gorm:"column:rating;not null" json:"rating"`
}

func (Ship) TableName() string {
	return "ship"
}

// Draft returns the ship as a draft with every field present.
func (s Ship) Draft() ShipDraft {
	return ShipDraft{
		Name:     &s.Name,
		Planet:   &s.Planet,
		ShipType: &s.ShipType,
		ProdDate: &s.ProdDate,
		IsUsed:   &s.IsUsed,
		Speed:    &s.Speed,
		CrewSize: &s.CrewSize,
		Rating:   &s.Rating,
	}
}
