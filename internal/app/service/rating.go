package service

import (
	"math"

	"starfleet/internal/app/ds"
)

// Rating computes
//
//	round2(80 * speed * k / (3019 - year + 1))
//
// where k is 0.5 for a used ship and 1 otherwise.
func Rating(ship ds.Ship) float64 {
	k := 1.0
	if ship.IsUsed {
		k = 0.5
	}
	year := ship.ProdDate.UTC().Year()
	return round2(80 * ship.Speed * k / float64(MaxProdYear-year+1))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
