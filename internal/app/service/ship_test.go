package service_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"starfleet/internal/app/ds"
	"starfleet/internal/app/repository"
	"starfleet/internal/app/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func year(y int) time.Time {
	return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func draft(name, planet string, t ds.ShipType, prodYear int, used bool, speed float64, crew int) *ds.ShipDraft {
	return &ds.ShipDraft{
		Name:     ptr(name),
		Planet:   ptr(planet),
		ShipType: ptr(t),
		ProdDate: ptr(year(prodYear)),
		IsUsed:   ptr(used),
		Speed:    ptr(speed),
		CrewSize: ptr(crew),
	}
}

// countingStore records how many times Save was called.
type countingStore struct {
	*repository.MemoryStore
	saves int
}

func (c *countingStore) Save(ship *ds.Ship) error {
	c.saves++
	return c.MemoryStore.Save(ship)
}

type failingStore struct {
	repository.Store
}

func (failingStore) FindAll() ([]ds.Ship, error) {
	return nil, errors.New("connection reset")
}

// seed stores five ships with ids 1..5:
//
//	1 Orion Explorer  Mars    TRANSPORT  2990 new  0.50  100  rating 1.33
//	2 Orion Hauler    Earth   MERCHANT   2800 used 0.80 2500  rating 0.15
//	3 Daedalus        Jupiter MILITARY   3019 new  0.30   40  rating 24.00
//	4 Nostromo        Mars    MERCHANT   2950 used 0.50    7  rating 0.29
//	5 Pioneer         Venus   SCIENTIFIC 3010 new  0.99   12  rating 7.92
func seed(t *testing.T) (*service.ShipService, *countingStore) {
	t.Helper()
	store := &countingStore{MemoryStore: repository.NewMemoryStore()}
	svc := service.NewShipService(store)

	for _, d := range []*ds.ShipDraft{
		draft("Orion Explorer", "Mars", ds.ShipTypeTransport, 2990, false, 0.5, 100),
		draft("Orion Hauler", "Earth", ds.ShipTypeMerchant, 2800, true, 0.8, 2500),
		draft("Daedalus", "Jupiter", ds.ShipTypeMilitary, 3019, false, 0.3, 40),
		draft("Nostromo", "Mars", ds.ShipTypeMerchant, 2950, true, 0.5, 7),
		draft("Pioneer", "Venus", ds.ShipTypeScientific, 3010, false, 0.99, 12),
	} {
		_, err := svc.Create(d)
		require.NoError(t, err)
	}
	store.saves = 0
	return svc, store
}

func ids(ships []ds.Ship) []int64 {
	out := make([]int64, 0, len(ships))
	for _, s := range ships {
		out = append(out, s.ID)
	}
	return out
}

func everything() service.Page {
	return service.Page{Number: ptr(0), Size: ptr(math.MaxInt)}
}

func TestShipService_Create(t *testing.T) {
	t.Run("computes rating and defaults used flag", func(t *testing.T) {
		svc := service.NewShipService(repository.NewMemoryStore())
		d := draft("Rocinante", "Mars", ds.ShipTypeMilitary, 2800, false, 0.5, 4)
		d.IsUsed = nil
		d.Rating = ptr(99.0)

		ship, err := svc.Create(d)
		require.NoError(t, err)

		assert.Equal(t, int64(1), ship.ID)
		assert.False(t, ship.IsUsed)
		assert.Equal(t, 0.18, ship.Rating)

		stored, err := svc.Get(ship.ID)
		require.NoError(t, err)
		assert.Equal(t, ship, stored)
	})

	t.Run("missing required field", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc := service.NewShipService(store)
		d := draft("Rocinante", "Mars", ds.ShipTypeMilitary, 2800, false, 0.5, 4)
		d.CrewSize = nil

		_, err := svc.Create(d)
		assert.ErrorIs(t, err, service.ErrValidation)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("field out of range", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc := service.NewShipService(store)

		_, err := svc.Create(draft("Rocinante", "Mars", ds.ShipTypeMilitary, 3020, false, 0.5, 4))
		var verr *service.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "prodDate", verr.Field)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("nil draft", func(t *testing.T) {
		svc := service.NewShipService(repository.NewMemoryStore())
		_, err := svc.Create(nil)
		assert.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("ids are never reused", func(t *testing.T) {
		svc, _ := seed(t)

		ok, err := svc.Delete(5)
		require.NoError(t, err)
		require.True(t, ok)

		ship, err := svc.Create(draft("Serenity", "Shadow", ds.ShipTypeTransport, 3000, true, 0.4, 9))
		require.NoError(t, err)
		assert.Equal(t, int64(6), ship.ID)
	})
}

func TestShipService_Get(t *testing.T) {
	svc, _ := seed(t)

	ship, err := svc.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "Daedalus", ship.Name)
	assert.Equal(t, 24.0, ship.Rating)

	_, err = svc.Get(0)
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = svc.Get(42)
	var nf *service.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, int64(42), nf.ID)
}

func TestShipService_Update(t *testing.T) {
	t.Run("empty draft is a no-op", func(t *testing.T) {
		svc, store := seed(t)
		before, err := svc.Get(1)
		require.NoError(t, err)

		for _, d := range []*ds.ShipDraft{nil, {}} {
			got, err := svc.Update(1, d)
			require.NoError(t, err)
			assert.Equal(t, before, got)
		}
		assert.Zero(t, store.saves)
	})

	t.Run("draft equal to the stored ship is a no-op", func(t *testing.T) {
		svc, store := seed(t)
		before, err := svc.Get(2)
		require.NoError(t, err)

		same := before.Draft()
		got, err := svc.Update(2, &same)
		require.NoError(t, err)
		assert.Equal(t, before, got)
		assert.Zero(t, store.saves)
	})

	t.Run("rating alone cannot be set", func(t *testing.T) {
		svc, store := seed(t)

		got, err := svc.Update(1, &ds.ShipDraft{Rating: ptr(80.0)})
		require.NoError(t, err)
		assert.Equal(t, 1.33, got.Rating)
		assert.Equal(t, 1, store.saves)
	})

	t.Run("crew size change keeps rating", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc := service.NewShipService(store)
		stale := ds.Ship{
			Name: "Nostromo", Planet: "Mars", ShipType: ds.ShipTypeMerchant,
			ProdDate: year(2950), IsUsed: true, Speed: 0.5, CrewSize: 7, Rating: 12.34,
		}
		require.NoError(t, store.Save(&stale))

		got, err := svc.Update(stale.ID, &ds.ShipDraft{CrewSize: ptr(9), Name: ptr("Nostromo II")})
		require.NoError(t, err)
		assert.Equal(t, 9, got.CrewSize)
		assert.Equal(t, "Nostromo II", got.Name)
		assert.Equal(t, 12.34, got.Rating)
	})

	t.Run("rating inputs recompute rating", func(t *testing.T) {
		tests := []struct {
			name   string
			patch  *ds.ShipDraft
			rating float64
		}{
			{"speed", &ds.ShipDraft{Speed: ptr(0.7)}, 0.4},
			{"used flag", &ds.ShipDraft{IsUsed: ptr(false)}, 0.57},
			{"production date", &ds.ShipDraft{ProdDate: ptr(year(3019))}, 20},
			{"same speed with other change", &ds.ShipDraft{Speed: ptr(0.5), Planet: ptr("Io")}, 12.34},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				store := repository.NewMemoryStore()
				svc := service.NewShipService(store)
				stale := ds.Ship{
					Name: "Nostromo", Planet: "Mars", ShipType: ds.ShipTypeMerchant,
					ProdDate: year(2950), IsUsed: true, Speed: 0.5, CrewSize: 7, Rating: 12.34,
				}
				require.NoError(t, store.Save(&stale))

				got, err := svc.Update(stale.ID, tt.patch)
				require.NoError(t, err)
				assert.Equal(t, tt.rating, got.Rating)

				stored, err := store.FindByID(stale.ID)
				require.NoError(t, err)
				assert.Equal(t, got, stored)
			})
		}
	})

	t.Run("invalid merged ship is rejected", func(t *testing.T) {
		svc, store := seed(t)
		before, err := svc.Get(1)
		require.NoError(t, err)

		_, err = svc.Update(1, &ds.ShipDraft{Speed: ptr(1.5)})
		var verr *service.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "speed", verr.Field)
		assert.Zero(t, store.saves)

		after, err := svc.Get(1)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _ := seed(t)
		_, err := svc.Update(99, &ds.ShipDraft{Name: ptr("Ghost")})
		assert.ErrorIs(t, err, service.ErrNotFound)

		_, err = svc.Update(-3, &ds.ShipDraft{Name: ptr("Ghost")})
		assert.ErrorIs(t, err, service.ErrValidation)
	})
}

func TestShipService_Delete(t *testing.T) {
	svc, _ := seed(t)

	ok, err := svc.Delete(2)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.Get(2)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.Delete(2)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.Delete(-1)
	assert.ErrorIs(t, err, service.ErrValidation)

	count, err := svc.Count(service.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestShipService_List(t *testing.T) {
	svc, _ := seed(t)

	tests := []struct {
		name   string
		filter service.Filter
		want   []int64
	}{
		{"no filter", service.Filter{}, []int64{1, 2, 3, 4, 5}},
		{"name substring", service.Filter{Name: ptr("Orion")}, []int64{1, 2}},
		{"name is case sensitive", service.Filter{Name: ptr("orion")}, []int64{}},
		{"planet substring", service.Filter{Planet: ptr("Ma")}, []int64{1, 4}},
		{"ship type", service.Filter{ShipType: ptr(ds.ShipTypeMerchant)}, []int64{2, 4}},
		{"used", service.Filter{IsUsed: ptr(true)}, []int64{2, 4}},
		{"not used", service.Filter{IsUsed: ptr(false)}, []int64{1, 3, 5}},
		{"speed range", service.Filter{MinSpeed: ptr(0.5), MaxSpeed: ptr(0.8)}, []int64{1, 2, 4}},
		{"crew range", service.Filter{MinCrewSize: ptr(12), MaxCrewSize: ptr(100)}, []int64{1, 3, 5}},
		{"rating range", service.Filter{MinRating: ptr(0.29), MaxRating: ptr(7.92)}, []int64{1, 4, 5}},
		{"date range is inclusive", service.Filter{After: ptr(year(2950)), Before: ptr(year(3010))}, []int64{1, 4, 5}},
		{"combined", service.Filter{Planet: ptr("Mars"), IsUsed: ptr(true)}, []int64{4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ships, err := svc.List(tt.filter, service.OrderNone, everything())
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(ships))

			count, err := svc.Count(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, len(ships), count)
		})
	}
}

func TestShipService_ListFiltersAreConjunctive(t *testing.T) {
	svc, _ := seed(t)

	fast, err := svc.List(service.Filter{MinSpeed: ptr(0.5)}, service.OrderNone, everything())
	require.NoError(t, err)
	used, err := svc.List(service.Filter{IsUsed: ptr(true)}, service.OrderNone, everything())
	require.NoError(t, err)
	both, err := svc.List(service.Filter{MinSpeed: ptr(0.5), IsUsed: ptr(true)}, service.OrderNone, everything())
	require.NoError(t, err)

	usedIDs := map[int64]bool{}
	for _, s := range used {
		usedIDs[s.ID] = true
	}
	var intersection []int64
	for _, s := range fast {
		if usedIDs[s.ID] {
			intersection = append(intersection, s.ID)
		}
	}
	assert.Equal(t, intersection, ids(both))
}

func TestShipService_ListOrder(t *testing.T) {
	svc, _ := seed(t)

	tests := []struct {
		order service.Order
		want  []int64
	}{
		{service.OrderNone, []int64{1, 2, 3, 4, 5}},
		{service.OrderID, []int64{1, 2, 3, 4, 5}},
		{service.OrderSpeed, []int64{3, 1, 4, 2, 5}},
		{service.OrderDate, []int64{2, 4, 1, 5, 3}},
		{service.OrderRating, []int64{2, 4, 1, 5, 3}},
	}
	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			ships, err := svc.List(service.Filter{}, tt.order, everything())
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(ships))
		})
	}
}

func TestShipService_ListPagination(t *testing.T) {
	svc, _ := seed(t)

	t.Run("defaults to first three", func(t *testing.T) {
		ships, err := svc.List(service.Filter{}, service.OrderNone, service.Page{})
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3}, ids(ships))
	})

	t.Run("second page of three holds the last two", func(t *testing.T) {
		ships, err := svc.List(service.Filter{}, service.OrderNone, service.Page{Number: ptr(1), Size: ptr(3)})
		require.NoError(t, err)
		assert.Equal(t, []int64{4, 5}, ids(ships))
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		ships, err := svc.List(service.Filter{}, service.OrderNone, service.Page{Number: ptr(7), Size: ptr(3)})
		require.NoError(t, err)
		assert.Empty(t, ships)
	})

	t.Run("pages concatenate to the full listing", func(t *testing.T) {
		full, err := svc.List(service.Filter{}, service.OrderDate, everything())
		require.NoError(t, err)

		var joined []int64
		for p := 0; ; p++ {
			page, err := svc.List(service.Filter{}, service.OrderDate, service.Page{Number: ptr(p), Size: ptr(2)})
			require.NoError(t, err)
			if len(page) == 0 {
				break
			}
			joined = append(joined, ids(page)...)
		}
		assert.Equal(t, ids(full), joined)
	})

	t.Run("negative page is rejected", func(t *testing.T) {
		_, err := svc.List(service.Filter{}, service.OrderNone, service.Page{Number: ptr(-1)})
		assert.ErrorIs(t, err, service.ErrValidation)
	})
}

func TestShipService_EmptyStore(t *testing.T) {
	svc := service.NewShipService(repository.NewMemoryStore())

	ships, err := svc.List(service.Filter{Name: ptr("any")}, service.OrderRating, service.Page{})
	require.NoError(t, err)
	assert.NotNil(t, ships)
	assert.Empty(t, ships)

	count, err := svc.Count(service.Filter{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestShipService_StoreFailure(t *testing.T) {
	svc := service.NewShipService(failingStore{Store: repository.NewMemoryStore()})

	_, err := svc.List(service.Filter{}, service.OrderNone, service.Page{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrValidation)
	assert.Contains(t, err.Error(), "connection reset")
}
