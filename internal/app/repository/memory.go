package repository

import (
	"sort"
	"sync"

	"starfleet/internal/app/ds"
)

// MemoryStore keeps ships in a map. Ids come from a counter that only
// grows, so a deleted id is never handed out again.
type MemoryStore struct {
	mu     sync.RWMutex
	ships  map[int64]ds.Ship
	lastID int64
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{ships: make(map[int64]ds.Ship)}
}

// FindAll returns the ships ordered by id.
func (m *MemoryStore) FindAll() ([]ds.Ship, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ships := make([]ds.Ship, 0, len(m.ships))
	for _, ship := range m.ships {
		ships = append(ships, ship)
	}
	sort.Slice(ships, func(i, j int) bool { return ships[i].ID < ships[j].ID })
	return ships, nil
}

func (m *MemoryStore) FindByID(id int64) (ds.Ship, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ship, ok := m.ships[id]
	if !ok {
		return ds.Ship{}, ErrNotFound
	}
	return ship, nil
}

func (m *MemoryStore) ExistsByID(id int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.ships[id]
	return ok, nil
}

func (m *MemoryStore) Save(ship *ds.Ship) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ship.ID == 0 {
		m.lastID++
		ship.ID = m.lastID
	} else if ship.ID > m.lastID {
		m.lastID = ship.ID
	}
	m.ships[ship.ID] = *ship
	return nil
}

func (m *MemoryStore) DeleteByID(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.ships, id)
	return nil
}

// Len returns the number of stored ships.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.ships)
}
