package repository

import (
	"errors"

	"starfleet/internal/app/ds"

	"gorm.io/gorm"
)

func (r *Repository) FindAll() ([]ds.Ship, error) {
	var ships []ds.Ship
	err := r.db.Order("id").Find(&ships).Error
	if err != nil {
		return nil, err
	}
	return ships, nil
}

func (r *Repository) FindByID(id int64) (ds.Ship, error) {
	ship := ds.Ship{}
	err := r.db.Where("id = ?", id).First(&ship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.Ship{}, ErrNotFound
	}
	if err != nil {
		return ds.Ship{}, err
	}
	return ship, nil
}

func (r *Repository) ExistsByID(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&ds.Ship{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save inserts the ship when it has no id yet, otherwise overwrites every
// column of the stored row. The id comes from the table sequence.
func (r *Repository) Save(ship *ds.Ship) error {
	if ship.ID == 0 {
		return r.db.Create(ship).Error
	}
	return r.db.Save(ship).Error
}

func (r *Repository) DeleteByID(id int64) error {
	return r.db.Where("id = ?", id).Delete(&ds.Ship{}).Error
}
