package repository

import (
	"errors"

	"starfleet/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ErrNotFound is returned by FindByID when no ship has the given id.
var ErrNotFound = errors.New("ship not found")

// Store is the persistence contract of the ship service.
// Save assigns a fresh id when ship.ID is zero; ids are never reused.
type Store interface {
	FindAll() ([]ds.Ship, error)
	FindByID(id int64) (ds.Ship, error)
	ExistsByID(id int64) (bool, error)
	Save(ship *ds.Ship) error
	DeleteByID(id int64) error
}

// Repository is the postgres backed Store.
type Repository struct {
	db *gorm.DB
}

var _ Store = (*Repository)(nil)

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return NewWithDB(db), nil
}

// NewWithDB wraps an already opened gorm connection.
func NewWithDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) DB() *gorm.DB {
	return r.db
}

// Ping checks that the database answers.
func (r *Repository) Ping() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
