package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wiralabs/client-console/internal/models"
)

// MetaHandler serves the fixed option lists the console's form dropdowns are
// built from.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// GetTimeZones godoc
// @Summary List supported time zones
// @Tags Meta
// @Produce json
// @Success 200 {array} models.TimeZoneOption
// @Router /meta/timezones [get]
func (h *MetaHandler) GetTimeZones(c *fiber.Ctx) error {
	return c.JSON(models.TimeZones)
}

// GetModels godoc
// @Summary List supported OpenAI models
// @Tags Meta
// @Produce json
// @Success 200 {array} models.ModelOption
// @Router /meta/models [get]
func (h *MetaHandler) GetModels(c *fiber.Ctx) error {
	return c.JSON(models.SupportedModels)
}
