package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/club-stadium-api/internal/model"
	"github.com/iliyamo/club-stadium-api/internal/queue"
	"github.com/iliyamo/club-stadium-api/internal/service"
)

// StadiumNotFound is the fixed message of every stadium 404.
const StadiumNotFound = "Stadium not found"

// StadiumHandler serves the /stadium endpoints.
type StadiumHandler struct {
	svc    *service.StadiumService
	events Notifier
}

// NewStadiumHandler returns handlers backed by svc.  events may be nil.
func NewStadiumHandler(svc *service.StadiumService, events Notifier) *StadiumHandler {
	if svc == nil {
		panic("nil service passed to NewStadiumHandler")
	}
	return &StadiumHandler{svc: svc, events: events}
}

func stadiumNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, echo.Map{"error": StadiumNotFound})
}

// Create handles POST /stadium/create.
func (h *StadiumHandler) Create(c echo.Context) error {
	var in model.StadiumInput
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	st, err := h.svc.AddStadium(c.Request().Context(), in)
	if err != nil {
		return err
	}
	if st == nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "stadium was not stored")
	}
	notify(c, h.events, queue.NewChangeEvent(queue.EntityStadium, queue.ActionCreated, st.ID, st.StadiumsName))
	return c.JSON(http.StatusCreated, st)
}

// List handles GET /stadium/all.
func (h *StadiumHandler) List(c echo.Context) error {
	items, err := h.svc.GetAllStadiums(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []model.Stadium{}
	}
	return c.JSON(http.StatusOK, items)
}

// ListByClub handles GET /stadium/club/:clubName.  An unknown club yields an
// empty list, not a 404.
func (h *StadiumHandler) ListByClub(c echo.Context) error {
	items, err := h.svc.GetStadiumsByClub(c.Request().Context(), c.Param("clubName"))
	if err != nil {
		return err
	}
	if items == nil {
		items = []model.Stadium{}
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /stadium/:stadiumsId.
func (h *StadiumHandler) Get(c echo.Context) error {
	id, ok := parseID(c, "stadiumsId")
	if !ok {
		return stadiumNotFound(c)
	}
	st, err := h.svc.GetStadiumByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if st == nil {
		return stadiumNotFound(c)
	}
	return c.JSON(http.StatusOK, st)
}

// Update handles PUT /stadium/:stadiumsId.
func (h *StadiumHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	id, ok := parseID(c, "stadiumsId")
	if !ok {
		return stadiumNotFound(c)
	}
	existing, err := h.svc.GetStadiumByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return stadiumNotFound(c)
	}

	var in model.StadiumInput
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	st, err := h.svc.UpdateStadium(ctx, id, in)
	if err != nil {
		return err
	}
	if st == nil {
		return stadiumNotFound(c)
	}
	notify(c, h.events, queue.NewChangeEvent(queue.EntityStadium, queue.ActionUpdated, st.ID, st.StadiumsName))
	return c.JSON(http.StatusCreated, st)
}

// Delete handles DELETE /stadium/:stadiumsId.
func (h *StadiumHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id, ok := parseID(c, "stadiumsId")
	if !ok {
		return stadiumNotFound(c)
	}
	existing, err := h.svc.GetStadiumByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return stadiumNotFound(c)
	}
	deleted, err := h.svc.DeleteStadium(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return stadiumNotFound(c)
	}
	notify(c, h.events, queue.NewChangeEvent(queue.EntityStadium, queue.ActionDeleted, id, ""))
	return c.NoContent(http.StatusNoContent)
}
