package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wiralabs/client-console/internal/models"
	"github.com/wiralabs/client-console/internal/services"
)

type ClientHandler struct {
	clientService *services.ClientService
}

func NewClientHandler(service *services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: service}
}

// GetClients godoc
// @Summary List all clients
// @Description Returns all client configuration records with normalized reminder lists
// @Tags Clients
// @Produce json
// @Param q query string false "Search term (name substring or account id)"
// @Success 200 {array} models.ClientConfig
// @Router /clients [get]
func (h *ClientHandler) GetClients(c *fiber.Ctx) error {
	clients, err := h.clientService.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	if term := c.Query("q"); term != "" {
		clients = h.clientService.Search(clients, term)
	}
	if clients == nil {
		clients = []models.ClientConfig{}
	}

	return c.JSON(clients)
}

// GetClientByID godoc
// @Summary Get client by ID
// @Description Returns a single client configuration record
// @Tags Clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} models.ClientConfig
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClientByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id is required",
		})
	}

	client, err := h.clientService.Load(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(client)
}

// GetClientMasked godoc
// @Summary Get client with masked API keys
// @Description Returns the client record with secrets masked, plus which key slots are configured
// @Tags Clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} map[string]interface{}
// @Router /clients/{id}/masked [get]
func (h *ClientHandler) GetClientMasked(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id is required",
		})
	}

	client, err := h.clientService.LoadMasked(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"client": client,
		"keys":   client.Keys(),
	})
}

// CreateClient godoc
// @Summary Create a new client
// @Description Creates a client configuration record. Unset fields take the form defaults.
// @Tags Clients
// @Accept json
// @Produce json
// @Param data body models.ClientConfig true "Client configuration"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	cfg := models.NewClientConfig()
	if err := c.BodyParser(cfg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request",
		})
	}

	id, err := h.clientService.Create(c.Context(), cfg)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "ok",
		"id":     id,
	})
}

// UpdateClient godoc
// @Summary Update a client
// @Description Replaces the stored record. The account id is immutable after creation.
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param data body models.ClientConfig true "Full client configuration"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id is required",
		})
	}

	var cfg models.ClientConfig
	if err := c.BodyParser(&cfg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request",
		})
	}

	if err := h.clientService.Update(c.Context(), id, &cfg); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"status": "ok"})
}

// DeleteClient godoc
// @Summary Delete a client
// @Description Removes the record; the backend cascades to its knowledge base
// @Tags Clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} map[string]string
// @Router /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id is required",
		})
	}

	if err := h.clientService.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
