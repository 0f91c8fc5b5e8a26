package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/cvstudio/api/http/presenter"
	"github.com/artem13815/cvstudio/pkg/profile"
	"github.com/artem13815/cvstudio/pkg/redflags"
)

// MetaHandler serves static catalogs: job fields with section guidance and
// the template list.
type MetaHandler struct {
	guidance redflags.Table
}

func NewMetaHandler(guidance redflags.Table) *MetaHandler {
	return &MetaHandler{guidance: guidance}
}

// Fields lists selectable job fields and their section guidance.
// @Summary Job fields and guidance
// @Tags    meta
// @Produce json
// @Success 200 {object} map[string]any
// @Router  /fields [get]
func (h *MetaHandler) Fields(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"fields":   redflags.JobFields,
		"default":  redflags.DefaultField,
		"guidance": h.guidance,
	})
}

// Templates lists the template catalog.
// @Summary Template catalog
// @Tags    meta
// @Produce json
// @Success 200 {array} profile.Template
// @Router  /templates [get]
func (h *MetaHandler) Templates(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, profile.Templates)
}
