package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/handwerkpro/handwerkpro-api/internal/application/dto"
	"github.com/handwerkpro/handwerkpro-api/pkg/validation"
)

// CustomerService is the surface of the customer aggregation service the
// HTTP layer depends on.
type CustomerService interface {
	ListAll(ctx context.Context, q dto.ListCustomersQuery) (*dto.ListCustomersResponse, error)
	ListOne(ctx context.Context, id string) (*dto.CustomerDetailResponse, error)
	GetStats(ctx context.Context) (*dto.CustomerStatusCounts, error)
	Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, id string) error
}

// CustomerHandler handles the /api/customers routes. Errors are returned to
// the central error handler, never mapped here.
type CustomerHandler struct {
	svc CustomerService
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(svc CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// List GET /api/customers?page=&pageSize=&search=&type=
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var q dto.ListCustomersQuery
	if err := c.QueryParser(&q); err != nil {
		return validation.NewError("Validation failed", map[string]string{"query": "malformed query parameters"})
	}
	if err := validation.Struct(&q); err != nil {
		return err
	}
	q.Defaults()

	out, err := h.svc.ListAll(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Stats GET /api/customers/stats
func (h *CustomerHandler) Stats(c *fiber.Ctx) error {
	out, err := h.svc.GetStats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.ListOne(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return validation.NewError("Validation failed", map[string]string{"body": "malformed request body"})
	}
	if err := validation.Struct(&in); err != nil {
		return err
	}

	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PATCH /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return validation.NewError("Validation failed", map[string]string{"body": "malformed request body"})
	}
	if err := validation.Struct(&in); err != nil {
		return err
	}

	out, err := h.svc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete DELETE /api/customers/:id, 204 with empty body on success.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
