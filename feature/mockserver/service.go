package mockserver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"badger-probe/core/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/ohler55/ojg/oj"
	"go.uber.org/zap"
)

// Service builds mock responses from fixtures. It keeps no state between requests.
type Service struct {
	source Source
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new mock API service reading from source.
func NewService(source Source, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		logger: logger,
		now:    time.Now,
	}
}

// Profile returns the profile fixture.
func (s *Service) Profile(ctx context.Context) (map[string]any, error) {
	return s.object(ctx, FixtureProfile)
}

// DataFields returns the profile's datafields, or an empty list when the profile has none.
func (s *Service) DataFields(ctx context.Context) (any, error) {
	profile, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if fields, ok := profile["datafields"]; ok {
		return fields, nil
	}
	return []any{}, nil
}

// Customers returns the account list fixture.
func (s *Service) Customers(ctx context.Context) ([]any, error) {
	return s.list(ctx, FixtureAccounts)
}

// Customer returns the account detail fixture rewritten for id.
func (s *Service) Customer(ctx context.Context, id string) (map[string]any, error) {
	customer, err := s.object(ctx, FixtureAccountDetail)
	if err != nil {
		return nil, err
	}
	assignIDs(customer, id, "locations")
	return customer, nil
}

// UpdateCustomer merges the non-blank fields of body into the account detail for id.
func (s *Service) UpdateCustomer(ctx context.Context, id string, body []byte) (map[string]any, error) {
	changes, err := decodeObject(body)
	if err != nil {
		return nil, err
	}

	customer, err := s.Customer(ctx, id)
	if err != nil {
		return nil, err
	}

	for k, v := range changes {
		if !utils.IsBlank(v) {
			customer[k] = v
		}
	}
	customer["last_modified_date"] = s.now().Format("2006-01-02")

	return customer, nil
}

// Checkins returns the check-in fixture with every entry pointed at customerID.
func (s *Service) Checkins(ctx context.Context, customerID string) ([]any, error) {
	if customerID == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "customer_id parameter required")
	}

	checkins, err := s.list(ctx, FixtureCheckins)
	if err != nil {
		return nil, err
	}

	if id, ok := utils.ToInt(customerID); ok {
		for _, c := range checkins {
			if m, ok := c.(map[string]any); ok {
				m["customer"] = int64(id)
			}
		}
	}
	return checkins, nil
}

var checkinFields = []string{"customer", "log_datetime", "type", "comments", "extra_fields", "created_by"}

// CreateCheckin overlays the request's check-in fields onto the example check-in.
func (s *Service) CreateCheckin(ctx context.Context, body []byte) (map[string]any, error) {
	req, err := decodeObject(body)
	if err != nil {
		return nil, err
	}

	checkin, err := s.object(ctx, FixtureCheckinCreated)
	if err != nil {
		return nil, err
	}

	for _, k := range checkinFields {
		if v, ok := req[k]; ok {
			checkin[k] = v
		}
	}
	return checkin, nil
}

// Routes returns the route list fixture.
func (s *Service) Routes(ctx context.Context) ([]any, error) {
	return s.list(ctx, FixtureRoutes)
}

// Route returns the route detail fixture rewritten for id.
func (s *Service) Route(ctx context.Context, id string) (map[string]any, error) {
	route, err := s.object(ctx, FixtureRouteDetail)
	if err != nil {
		return nil, err
	}
	assignIDs(route, id, "waypoints")
	return route, nil
}

// SearchUsers returns the users whose first name or username contains q, ignoring case.
func (s *Service) SearchUsers(ctx context.Context, q string) ([]any, error) {
	if q == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "query parameter 'q' required")
	}

	users, err := s.list(ctx, FixtureUsers)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(q)
	matches := []any{}
	for _, u := range users {
		m, ok := u.(map[string]any)
		if !ok {
			continue
		}
		if containsFold(m["first_name"], needle) || containsFold(m["username"], needle) {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

func (s *Service) fixture(ctx context.Context, name string) (any, error) {
	data, err := s.source.Read(ctx, name)
	if err != nil {
		return nil, err
	}
	v, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid fixture %s: %w", name, err)
	}
	return v, nil
}

func (s *Service) object(ctx context.Context, name string) (map[string]any, error) {
	v, err := s.fixture(ctx, name)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid fixture %s: expected an object", name)
	}
	return m, nil
}

func (s *Service) list(ctx context.Context, name string) ([]any, error) {
	v, err := s.fixture(ctx, name)
	if err != nil {
		return nil, err
	}
	l, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("invalid fixture %s: expected a list", name)
	}
	return l, nil
}

// assignIDs sets obj's id from the path segment and numbers the children under key as id*1000+i+1.
// Non-numeric ids leave obj untouched.
func assignIDs(obj map[string]any, rawID, key string) {
	id, ok := utils.ToInt(rawID)
	if !ok {
		return
	}
	obj["id"] = int64(id)

	children, ok := obj[key].([]any)
	if !ok {
		return
	}
	for i, child := range children {
		if m, ok := child.(map[string]any); ok {
			m["id"] = int64(id*1000 + i + 1)
		}
	}
}

func decodeObject(body []byte) (map[string]any, error) {
	v, err := oj.Parse(body)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fiber.NewError(fiber.StatusBadRequest, "request body must be a JSON object")
	}
	return m, nil
}

func containsFold(v any, needle string) bool {
	s, ok := v.(string)
	return ok && strings.Contains(strings.ToLower(s), needle)
}
