package service

import (
	"errors"
	"fmt"
	"sync"

	"starfleet/internal/app/ds"
	"starfleet/internal/app/repository"

	"github.com/sirupsen/logrus"
)

// ShipService is the query engine over the ship store. Each call holds a
// single lock for its whole duration, so reads and writes never interleave.
type ShipService struct {
	mu        sync.Mutex
	store     repository.Store
	validator *Validator
}

func NewShipService(store repository.Store) *ShipService {
	return &ShipService{
		store:     store,
		validator: NewValidator(store),
	}
}

// List filters, optionally sorts and paginates every stored ship. No match
// is an empty slice, not an error.
func (s *ShipService) List(filter Filter, order Order, page Page) ([]ds.Ship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ships, err := s.filtered(filter)
	if err != nil {
		return nil, err
	}
	order.Sort(ships)
	return page.Slice(ships)
}

// Count returns how many stored ships match the filter.
func (s *ShipService) Count(filter Filter) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ships, err := s.filtered(filter)
	if err != nil {
		return 0, err
	}
	return len(ships), nil
}

func (s *ShipService) filtered(filter Filter) ([]ds.Ship, error) {
	all, err := s.store.FindAll()
	if err != nil {
		return nil, fmt.Errorf("load ships: %w", err)
	}
	return filter.Apply(all), nil
}

// Create validates a complete draft, derives the rating and stores a new
// ship under a fresh id.
func (s *ShipService) Create(draft *ds.ShipDraft) (ds.Ship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validator.ValidateForCreation(draft); err != nil {
		return ds.Ship{}, err
	}
	if err := s.validator.ValidateFields(draft); err != nil {
		return ds.Ship{}, err
	}

	ship := ds.Ship{
		Name:     *draft.Name,
		Planet:   *draft.Planet,
		ShipType: *draft.ShipType,
		ProdDate: *draft.ProdDate,
		Speed:    *draft.Speed,
		CrewSize: *draft.CrewSize,
	}
	if draft.IsUsed != nil {
		ship.IsUsed = *draft.IsUsed
	}
	ship.Rating = Rating(ship)

	if err := s.store.Save(&ship); err != nil {
		return ds.Ship{}, fmt.Errorf("save ship: %w", err)
	}
	logrus.Infof("ship %d %q created, rating %.2f", ship.ID, ship.Name, ship.Rating)
	return ship, nil
}

// Get returns the ship with the given id.
func (s *ShipService) Get(id int64) (ds.Ship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.get(id)
}

func (s *ShipService) get(id int64) (ds.Ship, error) {
	if err := s.validator.ValidateID(id); err != nil {
		return ds.Ship{}, err
	}
	ship, err := s.store.FindByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return ds.Ship{}, &NotFoundError{ID: id}
	}
	if err != nil {
		return ds.Ship{}, fmt.Errorf("load ship %d: %w", id, err)
	}
	return ship, nil
}

// Update merges the present draft fields into the stored ship. An empty
// draft, or one equal to the stored ship field by field, returns the ship
// untouched without validating or saving it. The rating is recomputed
// only when the production date, the used flag or the speed changed.
func (s *ShipService) Update(id int64, draft *ds.ShipDraft) (ds.Ship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ship, err := s.get(id)
	if err != nil {
		return ds.Ship{}, err
	}
	if draft.Empty() || draft.Matches(ship) {
		return ship, nil
	}

	if merge(&ship, draft) {
		ship.Rating = Rating(ship)
	}
	merged := ship.Draft()
	if err := s.validator.ValidateFields(&merged); err != nil {
		return ds.Ship{}, err
	}

	if err := s.store.Save(&ship); err != nil {
		return ds.Ship{}, fmt.Errorf("save ship %d: %w", id, err)
	}
	logrus.Infof("ship %d updated, rating %.2f", ship.ID, ship.Rating)
	return ship, nil
}

// merge copies every present draft field that differs into ship and
// reports whether a rating input changed.
func merge(ship *ds.Ship, draft *ds.ShipDraft) (ratingDirty bool) {
	if draft.Name != nil && *draft.Name != ship.Name {
		ship.Name = *draft.Name
	}
	if draft.Planet != nil && *draft.Planet != ship.Planet {
		ship.Planet = *draft.Planet
	}
	if draft.ShipType != nil && *draft.ShipType != ship.ShipType {
		ship.ShipType = *draft.ShipType
	}
	if draft.ProdDate != nil && !draft.ProdDate.Equal(ship.ProdDate) {
		ship.ProdDate = *draft.ProdDate
		ratingDirty = true
	}
	if draft.IsUsed != nil && *draft.IsUsed != ship.IsUsed {
		ship.IsUsed = *draft.IsUsed
		ratingDirty = true
	}
	if draft.Speed != nil && *draft.Speed != ship.Speed {
		ship.Speed = *draft.Speed
		ratingDirty = true
	}
	if draft.CrewSize != nil && *draft.CrewSize != ship.CrewSize {
		ship.CrewSize = *draft.CrewSize
	}
	return ratingDirty
}

// Delete removes the ship with the given id.
func (s *ShipService) Delete(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validator.ValidateID(id); err != nil {
		return false, err
	}
	if err := s.store.DeleteByID(id); err != nil {
		return false, fmt.Errorf("delete ship %d: %w", id, err)
	}
	logrus.Infof("ship %d deleted", id)
	return true, nil
}
