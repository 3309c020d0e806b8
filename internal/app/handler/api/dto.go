package api

import (
	"time"

	"starfleet/internal/app/ds"
)

// ShipJSON is the wire form of a ship. ProdDate is in epoch milliseconds.
type ShipJSON struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Planet   string      `json:"planet"`
	ShipType ds.ShipType `json:"shipType"`
	ProdDate int64       `json:"prodDate"`
	IsUsed   bool        `json:"isUsed"`
	Speed    float64     `json:"speed"`
	CrewSize int         `json:"crewSize"`
	Rating   float64     `json:"rating"`
}

func toShipJSON(ship ds.Ship) ShipJSON {
	return ShipJSON{
		ID:       ship.ID,
		Name:     ship.Name,
		Planet:   ship.Planet,
		ShipType: ship.ShipType,
		ProdDate: ship.ProdDate.UnixMilli(),
		IsUsed:   ship.IsUsed,
		Speed:    ship.Speed,
		CrewSize: ship.CrewSize,
		Rating:   ship.Rating,
	}
}

func toShipsJSON(ships []ds.Ship) []ShipJSON {
	out := make([]ShipJSON, 0, len(ships))
	for _, ship := range ships {
		out = append(out, toShipJSON(ship))
	}
	return out
}

// ShipRequest is the body of create and update calls. Omitted or null
// fields stay absent.
type ShipRequest struct {
	Name     *string      `json:"name"`
	Planet   *string      `json:"planet"`
	ShipType *ds.ShipType `json:"shipType"`
	ProdDate *int64       `json:"prodDate"`
	IsUsed   *bool        `json:"isUsed"`
	Speed    *float64     `json:"speed"`
	CrewSize *int         `json:"crewSize"`
	Rating   *float64     `json:"rating"`
}

func (r ShipRequest) Draft() *ds.ShipDraft {
	draft := &ds.ShipDraft{
		Name:     r.Name,
		Planet:   r.Planet,
		ShipType: r.ShipType,
		IsUsed:   r.IsUsed,
		Speed:    r.Speed,
		CrewSize: r.CrewSize,
		Rating:   r.Rating,
	}
	if r.ProdDate != nil {
		t := time.UnixMilli(*r.ProdDate).UTC()
		draft.ProdDate = &t
	}
	return draft
}
