package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/club-stadium-api/internal/model"
	"github.com/iliyamo/club-stadium-api/internal/queue"
	"github.com/iliyamo/club-stadium-api/internal/service"
)

// ClubNotFound is the fixed message of every club 404.
const ClubNotFound = "Club not found"

// ClubHandler serves the /club endpoints.
type ClubHandler struct {
	svc    *service.ClubService
	events Notifier // optional
}

// NewClubHandler panics if svc is nil.  events may be nil to disable change
// notifications.
func NewClubHandler(svc *service.ClubService, events Notifier) *ClubHandler {
	if svc == nil {
		panic("nil service passed to NewClubHandler")
	}
	return &ClubHandler{svc: svc, events: events}
}

func clubNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, echo.Map{"error": ClubNotFound})
}

// Create handles POST /club/create.
func (h *ClubHandler) Create(c echo.Context) error {
	var in model.ClubInput
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	club, err := h.svc.AddClub(c.Request().Context(), in)
	if err != nil {
		return err
	}
	if club == nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "club was not stored")
	}
	notify(c, h.events, queue.NewChangeEvent(queue.EntityClub, queue.ActionCreated, club.ID, club.Name))
	return c.JSON(http.StatusCreated, club)
}

// List handles GET /club/all.  Clubs are sorted by name.
func (h *ClubHandler) List(c echo.Context) error {
	clubs, err := h.svc.GetAllClubs(c.Request().Context())
	if err != nil {
		return err
	}
	if clubs == nil {
		clubs = []model.Club{}
	}
	return c.JSON(http.StatusOK, clubs)
}

// Get handles GET /club/:clubId.
func (h *ClubHandler) Get(c echo.Context) error {
	id, ok := parseID(c, "clubId")
	if !ok {
		return clubNotFound(c)
	}
	club, err := h.svc.GetClubByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if club == nil {
		return clubNotFound(c)
	}
	return c.JSON(http.StatusOK, club)
}

// Update handles PUT /club/:clubId.  The body replaces every mutable field.
// Existence is checked before the body is validated, so an unknown id is a
// 404 whatever was sent.
func (h *ClubHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	id, ok := parseID(c, "clubId")
	if !ok {
		return clubNotFound(c)
	}
	existing, err := h.svc.GetClubByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return clubNotFound(c)
	}

	var in model.ClubInput
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	club, err := h.svc.UpdateClub(ctx, id, in)
	if err != nil {
		return err
	}
	if club == nil { // removed between the check and the update
		return clubNotFound(c)
	}
	notify(c, h.events, queue.NewChangeEvent(queue.EntityClub, queue.ActionUpdated, club.ID, club.Name))
	return c.JSON(http.StatusCreated, club)
}

// Delete handles DELETE /club/:clubId and returns 204 on success.
func (h *ClubHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id, ok := parseID(c, "clubId")
	if !ok {
		return clubNotFound(c)
	}
	existing, err := h.svc.GetClubByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return clubNotFound(c)
	}
	deleted, err := h.svc.DeleteClub(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return clubNotFound(c)
	}
	notify(c, h.events, queue.NewChangeEvent(queue.EntityClub, queue.ActionDeleted, id, ""))
	return c.NoContent(http.StatusNoContent)
}
