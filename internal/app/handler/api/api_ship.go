package api

import (
	"errors"
	"io"
	"net/http"

	"starfleet/internal/app/ds"
	"starfleet/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ShipHandler struct {
	Ships interface {
		List(filter service.Filter, order service.Order, page service.Page) ([]ds.Ship, error)
		Count(filter service.Filter) (int, error)
		Create(draft *ds.ShipDraft) (ds.Ship, error)
		Get(id int64) (ds.Ship, error)
		Update(id int64, draft *ds.ShipDraft) (ds.Ship, error)
		Delete(id int64) (bool, error)
	}
}

// GetShipsAPI - GET /rest/ships - filtered, ordered, paged list
//
// @Summary  List ships
// @Tags     ships
// @Produce  json
// @Param    name        query string false "name substring"
// @Param    planet      query string false "planet substring"
// @Param    shipType    query string false "TRANSPORT, MILITARY, MERCHANT or SCIENTIFIC"
// @Param    after       query int    false "production date lower bound, epoch millis"
// @Param    before      query int    false "production date upper bound, epoch millis"
// @Param    isUsed      query bool   false "used flag"
// @Param    minSpeed    query number false "minimum speed"
// @Param    maxSpeed    query number false "maximum speed"
// @Param    minCrewSize query int    false "minimum crew size"
// @Param    maxCrewSize query int    false "maximum crew size"
// @Param    minRating   query number false "minimum rating"
// @Param    maxRating   query number false "maximum rating"
// @Param    order       query string false "ID, SPEED, DATE or RATING"
// @Param    pageNumber  query int    false "page number, default 0"
// @Param    pageSize    query int    false "page size, default 3"
// @Success  200 {array}  ShipJSON
// @Failure  400 {object} ErrorResponse
// @Router   /rest/ships [get]
func (h *ShipHandler) GetShipsAPI(c *gin.Context) {
	filter, err := ParseFilter(c)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	order, err := service.ParseOrder(c.Query("order"))
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	page, err := ParsePage(c)
	if err != nil {
		h.errorHandler(c, err)
		return
	}

	ships, err := h.Ships.List(filter, order, page)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	c.JSON(http.StatusOK, toShipsJSON(ships))
}

// GetShipsCountAPI - GET /rest/ships/count - number of matching ships
//
// @Summary  Count ships
// @Tags     ships
// @Produce  json
// @Success  200 {integer} int
// @Failure  400 {object}  ErrorResponse
// @Router   /rest/ships/count [get]
func (h *ShipHandler) GetShipsCountAPI(c *gin.Context) {
	filter, err := ParseFilter(c)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	count, err := h.Ships.Count(filter)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

// CreateShipAPI - POST /rest/ships - create a ship
//
// @Summary  Create ship
// @Tags     ships
// @Accept   json
// @Produce  json
// @Param    ship body     ShipRequest true "ship"
// @Success  200  {object} ShipJSON
// @Failure  400  {object} ErrorResponse
// @Router   /rest/ships [post]
func (h *ShipHandler) CreateShipAPI(c *gin.Context) {
	var req ShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorHandler(c, badBody(err))
		return
	}

	ship, err := h.Ships.Create(req.Draft())
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	c.JSON(http.StatusOK, toShipJSON(ship))
}

// GetShipAPI - GET /rest/ships/:id - one ship
//
// @Summary  Get ship
// @Tags     ships
// @Produce  json
// @Param    id  path     int true "ship id"
// @Success  200 {object} ShipJSON
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /rest/ships/{id} [get]
func (h *ShipHandler) GetShipAPI(c *gin.Context) {
	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		h.errorHandler(c, err)
		return
	}

	ship, err := h.Ships.Get(id)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	c.JSON(http.StatusOK, toShipJSON(ship))
}

// UpdateShipAPI - POST|PUT /rest/ships/:id - partial update
//
// @Summary  Update ship
// @Tags     ships
// @Accept   json
// @Produce  json
// @Param    id   path     int         true "ship id"
// @Param    ship body     ShipRequest false "fields to change"
// @Success  200  {object} ShipJSON
// @Failure  400  {object} ErrorResponse
// @Failure  404  {object} ErrorResponse
// @Router   /rest/ships/{id} [post]
func (h *ShipHandler) UpdateShipAPI(c *gin.Context) {
	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		h.errorHandler(c, err)
		return
	}

	var draft *ds.ShipDraft
	var req ShipRequest
	err = c.ShouldBindJSON(&req)
	switch {
	case err == nil:
		draft = req.Draft()
	case errors.Is(err, io.EOF):
		// no body: nothing to change
	default:
		h.errorHandler(c, badBody(err))
		return
	}

	ship, err := h.Ships.Update(id, draft)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	c.JSON(http.StatusOK, toShipJSON(ship))
}

// DeleteShipAPI - DELETE /rest/ships/:id - remove a ship
//
// @Summary  Delete ship
// @Tags     ships
// @Produce  json
// @Param    id  path     int true "ship id"
// @Success  200 {boolean} bool
// @Failure  400 {object}  ErrorResponse
// @Failure  404 {object}  ErrorResponse
// @Router   /rest/ships/{id} [delete]
func (h *ShipHandler) DeleteShipAPI(c *gin.Context) {
	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		h.errorHandler(c, err)
		return
	}

	deleted, err := h.Ships.Delete(id)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}

// ErrorResponse is the body of every failed call.
type ErrorResponse struct {
	Description string `json:"description"`
}

func (h *ShipHandler) errorHandler(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation):
		code = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		code = http.StatusNotFound
	}

	if code == http.StatusInternalServerError {
		logrus.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	} else {
		logrus.Warnf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(code, ErrorResponse{Description: err.Error()})
}

func badBody(err error) error {
	return &service.ValidationError{Field: "body", Message: err.Error()}
}
