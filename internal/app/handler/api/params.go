package api

import (
	"strconv"
	"time"

	"starfleet/internal/app/ds"
	"starfleet/internal/app/service"

	"github.com/gin-gonic/gin"
)

// ParseFilter reads the listing predicates from the query string. A missing
// parameter leaves its predicate unset; a malformed one is a validation
// error.
func ParseFilter(c *gin.Context) (service.Filter, error) {
	var (
		f   service.Filter
		err error
	)
	f.Name = queryString(c, "name")
	f.Planet = queryString(c, "planet")

	if raw, ok := c.GetQuery("shipType"); ok {
		t := ds.ShipType(raw)
		if !t.Valid() {
			return service.Filter{}, invalidParam("shipType", "must be one of TRANSPORT, MILITARY, MERCHANT, SCIENTIFIC")
		}
		f.ShipType = &t
	}
	if f.After, err = queryMillis(c, "after"); err != nil {
		return service.Filter{}, err
	}
	if f.Before, err = queryMillis(c, "before"); err != nil {
		return service.Filter{}, err
	}
	if f.IsUsed, err = queryBool(c, "isUsed"); err != nil {
		return service.Filter{}, err
	}
	if f.MinSpeed, err = queryFloat(c, "minSpeed"); err != nil {
		return service.Filter{}, err
	}
	if f.MaxSpeed, err = queryFloat(c, "maxSpeed"); err != nil {
		return service.Filter{}, err
	}
	if f.MinCrewSize, err = queryInt(c, "minCrewSize"); err != nil {
		return service.Filter{}, err
	}
	if f.MaxCrewSize, err = queryInt(c, "maxCrewSize"); err != nil {
		return service.Filter{}, err
	}
	if f.MinRating, err = queryFloat(c, "minRating"); err != nil {
		return service.Filter{}, err
	}
	if f.MaxRating, err = queryFloat(c, "maxRating"); err != nil {
		return service.Filter{}, err
	}
	return f, nil
}

// ParsePage reads pageNumber and pageSize.
func ParsePage(c *gin.Context) (service.Page, error) {
	number, err := queryInt(c, "pageNumber")
	if err != nil {
		return service.Page{}, err
	}
	size, err := queryInt(c, "pageSize")
	if err != nil {
		return service.Page{}, err
	}
	return service.Page{Number: number, Size: size}, nil
}

func queryString(c *gin.Context, key string) *string {
	if raw, ok := c.GetQuery(key); ok {
		return &raw
	}
	return nil
}

func queryInt(c *gin.Context, key string) (*int, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, invalidParam(key, "must be an integer")
	}
	return &v, nil
}

func queryFloat(c *gin.Context, key string) (*float64, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, invalidParam(key, "must be a number")
	}
	return &v, nil
}

func queryBool(c *gin.Context, key string) (*bool, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, invalidParam(key, "must be true or false")
	}
	return &v, nil
}

func queryMillis(c *gin.Context, key string) (*time.Time, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil, nil
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, invalidParam(key, "must be epoch milliseconds")
	}
	t := time.UnixMilli(ms).UTC()
	return &t, nil
}

func invalidParam(key, message string) error {
	return &service.ValidationError{Field: key, Message: message}
}
