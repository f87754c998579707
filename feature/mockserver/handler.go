package mockserver

import (
	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for the mock API.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterProfileRoutes registers the profile and data field routes.
func (h *Handler) RegisterProfileRoutes(r fiber.Router) {
	r.Get("/profile", h.HandleProfile)
	r.Get("/profiles", h.HandleProfile)
	r.Get("/datafields", h.HandleDataFields)
}

// RegisterAccountRoutes registers the customer routes.
func (h *Handler) RegisterAccountRoutes(r fiber.Router) {
	r.Get("/customers", h.HandleCustomers)
	r.Get("/customers/:id", h.HandleCustomer)
	r.Patch("/customers/:id", h.HandleUpdateCustomer)
	r.Post("/customers/:id", h.HandleUpdateCustomer)
}

// RegisterAppointmentRoutes registers the check-in routes.
func (h *Handler) RegisterAppointmentRoutes(r fiber.Router) {
	r.Get("/appointments", h.HandleCheckins)
	r.Post("/appointments", h.HandleCreateCheckin)
}

// RegisterRouteRoutes registers the sales route routes.
func (h *Handler) RegisterRouteRoutes(r fiber.Router) {
	r.Get("/routes", h.HandleRoutes)
	r.Get("/routes/:id", h.HandleRoute)
}

// RegisterSearchRoutes registers the user search route.
func (h *Handler) RegisterSearchRoutes(r fiber.Router) {
	r.Get("/search/users", h.HandleSearchUsers)
}

// HandleProfile returns the signed-in user's profile.
func (h *Handler) HandleProfile(c *fiber.Ctx) error {
	profile, err := h.service.Profile(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// HandleDataFields returns the account data field definitions.
func (h *Handler) HandleDataFields(c *fiber.Ctx) error {
	fields, err := h.service.DataFields(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fields)
}

// HandleCustomers returns all customers.
func (h *Handler) HandleCustomers(c *fiber.Ctx) error {
	customers, err := h.service.Customers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(customers)
}

// HandleCustomer returns one customer.
func (h *Handler) HandleCustomer(c *fiber.Ctx) error {
	customer, err := h.service.Customer(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(customer)
}

// HandleUpdateCustomer applies a partial update and echoes the result.
func (h *Handler) HandleUpdateCustomer(c *fiber.Ctx) error {
	customer, err := h.service.UpdateCustomer(c.Context(), c.Params("id"), c.Body())
	if err != nil {
		return err
	}
	return c.JSON(customer)
}

// HandleCheckins returns the check-ins of the customer named by customer_id.
func (h *Handler) HandleCheckins(c *fiber.Ctx) error {
	checkins, err := h.service.Checkins(c.Context(), c.Query("customer_id"))
	if err != nil {
		return err
	}
	return c.JSON(checkins)
}

// HandleCreateCheckin records a check-in.
func (h *Handler) HandleCreateCheckin(c *fiber.Ctx) error {
	checkin, err := h.service.CreateCheckin(c.Context(), c.Body())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(checkin)
}

// HandleRoutes returns all routes.
func (h *Handler) HandleRoutes(c *fiber.Ctx) error {
	routes, err := h.service.Routes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(routes)
}

// HandleRoute returns one route with its waypoints.
func (h *Handler) HandleRoute(c *fiber.Ctx) error {
	route, err := h.service.Route(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(route)
}

// HandleSearchUsers returns users matching the q parameter.
func (h *Handler) HandleSearchUsers(c *fiber.Ctx) error {
	users, err := h.service.SearchUsers(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(users)
}
