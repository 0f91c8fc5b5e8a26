package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/cvstudio/api/http/presenter"
	"github.com/artem13815/cvstudio/pkg/profile"
	"github.com/artem13815/cvstudio/pkg/redflags"
)

type ProfilesHandler struct {
	svc      profile.UseCase
	guidance redflags.Table
	validate *validator.Validate
}

func NewProfilesHandler(svc profile.UseCase, guidance redflags.Table) *ProfilesHandler {
	return &ProfilesHandler{
		svc:      svc,
		guidance: guidance,
		validate: validator.New(),
	}
}

type createProfileRequest struct {
	JobField string `json:"jobField"`
	Template string `json:"template"`
}

// Create creates a new empty profile record.
// @Summary Create profile
// @Tags    profiles
// @Accept  json
// @Produce json
// @Param   input body createProfileRequest false "initial job field and template"
// @Security BearerAuth
// @Success 201 {object} profile.Record
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /profiles [post]
func (h *ProfilesHandler) Create(c *fiber.Ctx) error {
	var req createProfileRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
		}
	}
	if req.JobField != "" && !redflags.Known(req.JobField) {
		return presenter.Error(c, http.StatusBadRequest, "unknown job field")
	}
	rec, err := h.svc.Create(c.Context(), ownerID(c), req.JobField, req.Template)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to create profile")
	}
	return presenter.JSON(c, http.StatusCreated, rec)
}

// List returns the caller's profile records.
// @Summary List profiles
// @Tags    profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} profile.Record
// @Router  /profiles [get]
func (h *ProfilesHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.svc.List(c.Context(), ownerID(c), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list profiles")
	}
	if items == nil {
		items = []profile.Record{}
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Get returns one profile record.
// @Summary Get profile
// @Tags    profiles
// @Produce json
// @Param   id path string true "profile ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} profile.Record
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/{id} [get]
func (h *ProfilesHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	rec, err := h.svc.Get(c.Context(), ownerID(c), id)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "profile not found")
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

type updateProfileRequest struct {
	Profile  profile.Profile `json:"profile"`
	JobField string          `json:"jobField"`
	Template string          `json:"template"`
}

// Update replaces the profile content of a record.
// @Summary Update profile
// @Tags    profiles
// @Accept  json
// @Produce json
// @Param   id path string true "profile ID (UUID)"
// @Param   input body updateProfileRequest true "profile payload"
// @Security BearerAuth
// @Success 200 {object} profile.Record
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/{id} [put]
func (h *ProfilesHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "validation failed: "+err.Error())
	}
	if req.JobField != "" && !redflags.Known(req.JobField) {
		return presenter.Error(c, http.StatusBadRequest, "unknown job field")
	}
	rec, err := h.svc.Update(c.Context(), ownerID(c), id, req.Profile, req.JobField, req.Template)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "profile not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update profile")
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

// Reset replaces the record with a fresh empty profile.
// @Summary Reset profile
// @Tags    profiles
// @Produce json
// @Param   id path string true "profile ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} profile.Record
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/{id}/reset [post]
func (h *ProfilesHandler) Reset(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	rec, err := h.svc.Reset(c.Context(), ownerID(c), id)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "profile not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to reset profile")
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

// Delete removes a profile record and its documents.
// @Summary Delete profile
// @Tags    profiles
// @Param   id path string true "profile ID (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/{id} [delete]
func (h *ProfilesHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Context(), ownerID(c), id); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "profile not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete profile")
	}
	return c.SendStatus(http.StatusNoContent)
}

// Improve applies the tone pass over summary and bullets.
// @Summary Improve profile content
// @Tags    profiles
// @Produce json
// @Param   id path string true "profile ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} profile.Record
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/{id}/improve [post]
func (h *ProfilesHandler) Improve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	rec, err := h.svc.Improve(c.Context(), ownerID(c), id)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "profile not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to improve profile")
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

// Flags runs the red flag analysis for a job field.
// @Summary Red flag analysis
// @Tags    profiles
// @Produce json
// @Param   id path string true "profile ID (UUID)"
// @Param   field query string false "job field (defaults to the record's field, then General)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profiles/{id}/flags [get]
func (h *ProfilesHandler) Flags(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	rec, err := h.svc.Get(c.Context(), ownerID(c), id)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "profile not found")
	}
	field := c.Query("field")
	if field == "" {
		field = rec.JobField
	}
	if field == "" {
		field = redflags.DefaultField
	}
	if !redflags.Known(field) {
		return presenter.Error(c, http.StatusBadRequest, "unknown job field")
	}
	flags := redflags.Analyze(rec.Profile, field, h.guidance)
	if flags == nil {
		flags = []string{}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"field": field,
		"flags": flags,
	})
}
