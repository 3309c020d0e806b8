package service

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"starfleet/internal/app/ds"
)

// Filter holds the optional listing predicates. A nil field matches every
// ship; set fields are combined with AND.
type Filter struct {
	Name        *string
	Planet      *string
	ShipType    *ds.ShipType
	After       *time.Time
	Before      *time.Time
	IsUsed      *bool
	MinSpeed    *float64
	MaxSpeed    *float64
	MinCrewSize *int
	MaxCrewSize *int
	MinRating   *float64
	MaxRating   *float64
}

// Match reports whether the ship satisfies every set predicate.
func (f Filter) Match(ship ds.Ship) bool {
	return f.matchText(ship) &&
		f.matchDates(ship) &&
		(f.ShipType == nil || ship.ShipType == *f.ShipType) &&
		(f.IsUsed == nil || ship.IsUsed == *f.IsUsed) &&
		inRange(ship.Speed, f.MinSpeed, f.MaxSpeed) &&
		inRange(ship.CrewSize, f.MinCrewSize, f.MaxCrewSize) &&
		inRange(ship.Rating, f.MinRating, f.MaxRating)
}

func (f Filter) matchText(ship ds.Ship) bool {
	if f.Name != nil && !strings.Contains(ship.Name, *f.Name) {
		return false
	}
	if f.Planet != nil && !strings.Contains(ship.Planet, *f.Planet) {
		return false
	}
	return true
}

func (f Filter) matchDates(ship ds.Ship) bool {
	if f.After != nil && ship.ProdDate.Before(*f.After) {
		return false
	}
	if f.Before != nil && ship.ProdDate.After(*f.Before) {
		return false
	}
	return true
}

func inRange[T cmp.Ordered](v T, lo, hi *T) bool {
	if lo != nil && v < *lo {
		return false
	}
	if hi != nil && v > *hi {
		return false
	}
	return true
}

// Apply returns the matching ships in their input order.
func (f Filter) Apply(ships []ds.Ship) []ds.Ship {
	matched := make([]ds.Ship, 0, len(ships))
	for _, ship := range ships {
		if f.Match(ship) {
			matched = append(matched, ship)
		}
	}
	return matched
}

// Order names the sort key of a listing. The zero value keeps input order.
type Order string

const (
	OrderNone   Order = ""
	OrderID     Order = "ID"
	OrderSpeed  Order = "SPEED"
	OrderDate   Order = "DATE"
	OrderRating Order = "RATING"
)

var comparators = map[Order]func(a, b ds.Ship) int{
	OrderID:     func(a, b ds.Ship) int { return cmp.Compare(a.ID, b.ID) },
	OrderSpeed:  func(a, b ds.Ship) int { return cmp.Compare(a.Speed, b.Speed) },
	OrderDate:   func(a, b ds.Ship) int { return a.ProdDate.Compare(b.ProdDate) },
	OrderRating: func(a, b ds.Ship) int { return cmp.Compare(a.Rating, b.Rating) },
}

// ParseOrder accepts an empty string or one of ID, SPEED, DATE, RATING in
// any letter case.
func ParseOrder(raw string) (Order, error) {
	order := Order(strings.ToUpper(strings.TrimSpace(raw)))
	if order == OrderNone {
		return OrderNone, nil
	}
	if _, ok := comparators[order]; !ok {
		return OrderNone, newValidationError("order", "must be one of ID, SPEED, DATE, RATING")
	}
	return order, nil
}

// Sort orders ships ascending by the key in place. Equal keys keep their
// relative order.
func (o Order) Sort(ships []ds.Ship) {
	compare, ok := comparators[o]
	if !ok {
		return
	}
	slices.SortStableFunc(ships, compare)
}

const (
	DefaultPageNumber = 0
	DefaultPageSize   = 3
)

// Page selects a window of a listing. Nil fields fall back to
// DefaultPageNumber and DefaultPageSize.
type Page struct {
	Number *int
	Size   *int
}

func (p Page) resolve() (number, size int, err error) {
	number, size = DefaultPageNumber, DefaultPageSize
	if p.Number != nil {
		number = *p.Number
	}
	if p.Size != nil {
		size = *p.Size
	}
	if number < 0 {
		return 0, 0, newValidationError("pageNumber", "must not be negative")
	}
	if size < 0 {
		return 0, 0, newValidationError("pageSize", "must not be negative")
	}
	return number, size, nil
}

// Slice returns the elements at [number*size, number*size+size) clipped to
// the slice; a window past the end is empty.
func (p Page) Slice(ships []ds.Ship) ([]ds.Ship, error) {
	number, size, err := p.resolve()
	if err != nil {
		return nil, err
	}
	if size == 0 || number > (len(ships)-1)/size {
		return []ds.Ship{}, nil
	}
	from := number * size
	to := len(ships)
	if size < to-from {
		to = from + size
	}
	return ships[from:to], nil
}
