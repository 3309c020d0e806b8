package service

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"starfleet/internal/app/ds"
	"starfleet/internal/app/repository"

	"github.com/go-playground/validator/v10"
)

const (
	MinProdYear = 2800
	MaxProdYear = 3019
)

var fieldMessages = map[string]string{
	"name":     "must be 1 to 50 characters long",
	"planet":   "must be 1 to 50 characters long",
	"shipType": "must be one of TRANSPORT, MILITARY, MERCHANT, SCIENTIFIC",
	"prodDate": fmt.Sprintf("year must be between %d and %d", MinProdYear, MaxProdYear),
	"speed":    "must be between 0.01 and 0.99",
	"crewSize": "must be between 1 and 9999",
}

// Validator checks ship drafts and ids.
type Validator struct {
	store    repository.Store
	validate *validator.Validate
}

func NewValidator(store repository.Store) *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return lowerFirst(f.Name)
	})
	mustRegister(v, "prodyear", validProdYear)
	mustRegister(v, "shiptype", validShipType)

	return &Validator{
		store:    store,
		validate: v,
	}
}

// ValidateForCreation fails when any field a new ship needs is absent.
func (v *Validator) ValidateForCreation(draft *ds.ShipDraft) error {
	if draft == nil {
		return newValidationError("", "one or more required fields is empty")
	}
	var missing []string
	if draft.Name == nil {
		missing = append(missing, "name")
	}
	if draft.Planet == nil {
		missing = append(missing, "planet")
	}
	if draft.ShipType == nil {
		missing = append(missing, "shipType")
	}
	if draft.ProdDate == nil {
		missing = append(missing, "prodDate")
	}
	if draft.Speed == nil {
		missing = append(missing, "speed")
	}
	if draft.CrewSize == nil {
		missing = append(missing, "crewSize")
	}
	if len(missing) > 0 {
		return newValidationError("", "one or more required fields is empty: "+strings.Join(missing, ", "))
	}
	return nil
}

// ValidateFields checks the range and length of every present field.
func (v *Validator) ValidateFields(draft *ds.ShipDraft) error {
	if draft == nil {
		return nil
	}
	err := v.validate.Struct(draft)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		field := fieldErrs[0].Field()
		msg, ok := fieldMessages[field]
		if !ok {
			msg = fmt.Sprintf("failed %q rule", fieldErrs[0].Tag())
		}
		return newValidationError(field, msg)
	}
	return err
}

// ValidateID fails with a ValidationError for a non-positive id and with
// a NotFoundError when the store has no such ship.
func (v *Validator) ValidateID(id int64) error {
	if id <= 0 {
		return newValidationError("id", "must be a positive integer")
	}
	exists, err := v.store.ExistsByID(id)
	if err != nil {
		return fmt.Errorf("check ship %d: %w", id, err)
	}
	if !exists {
		return &NotFoundError{ID: id}
	}
	return nil
}

// ParseID turns a raw id into a positive integer. The id may be written
// as a float ("2.0") but must not carry a fractional part.
func ParseID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, newValidationError("id", "is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		switch {
		case ferr != nil || math.IsNaN(f) || math.IsInf(f, 0):
			return 0, newValidationError("id", "must be a number")
		case f != math.Trunc(f):
			return 0, newValidationError("id", "must be an integer")
		case f >= math.MaxInt64 || f <= math.MinInt64:
			return 0, newValidationError("id", "is out of range")
		}
		id = int64(f)
	}
	if id <= 0 {
		return 0, newValidationError("id", "must be a positive integer")
	}
	return id, nil
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

func validProdYear(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	year := t.UTC().Year()
	return year >= MinProdYear && year <= MaxProdYear
}

func validShipType(fl validator.FieldLevel) bool {
	return ds.ShipType(fl.Field().String()).Valid()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
