package rest

import (
	"github.com/ezdiharweb/agency-api/clients/application"
	"github.com/ezdiharweb/agency-api/clients/domain"
	"github.com/gofiber/fiber/v2"
)

// ClientHandler handles REST requests for clients
type ClientHandler struct {
	clientService *application.ClientService
}

// NewClientHandler creates a new handler instance
func NewClientHandler(clientService *application.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// RegisterRoutes registers client routes on the Fiber router
func (h *ClientHandler) RegisterRoutes(router fiber.Router) {
	clients := router.Group("/clients")

	clients.Get("/", h.ListClients)
	clients.Post("/", h.CreateClient)
	clients.Get("/search", h.SearchClients)
	clients.Get("/:id", h.GetClient)
	clients.Put("/:id", h.UpdateClient)
	clients.Delete("/:id", h.DeleteClient)
}

// ListClients lists clients with filters
func (h *ClientHandler) ListClients(c *fiber.Ctx) error {
	filter := domain.ClientFilter{
		Search:    c.Query("search"),
		Limit:     c.QueryInt("limit", 50),
		Offset:    c.QueryInt("offset", 0),
		OrderBy:   c.Query("order_by", "created_at"),
		OrderDesc: c.QueryBool("order_desc", true),
	}

	clients, err := h.clientService.List(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"data": clients, "count": len(clients)})
}

// CreateClient creates a new client
func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	var req CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	client := &domain.Client{
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
		Notes:   req.Notes,
	}

	if err := h.clientService.Create(c.Context(), client); err != nil {
		if err == domain.ErrDuplicateClient {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(client)
}

// GetClient returns a client by ID
func (h *ClientHandler) GetClient(c *fiber.Ctx) error {
	id := c.Params("id")

	client, err := h.clientService.GetByID(c.Context(), id)
	if err != nil {
		if err == domain.ErrClientNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(client)
}

// UpdateClient updates a client
func (h *ClientHandler) UpdateClient(c *fiber.Ctx) error {
	id := c.Params("id")

	client, err := h.clientService.GetByID(c.Context(), id)
	if err != nil {
		if err == domain.ErrClientNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var req UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Company != nil {
		client.Company = *req.Company
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}

	if err := h.clientService.Update(c.Context(), client); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(client)
}

// DeleteClient removes a client
func (h *ClientHandler) DeleteClient(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.clientService.Delete(c.Context(), id); err != nil {
		if err == domain.ErrClientNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// SearchClients finds clients by free text
func (h *ClientHandler) SearchClients(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Query parameter 'q' is required"})
	}

	clients, err := h.clientService.Search(c.Context(), query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"data": clients, "count": len(clients)})
}
