package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/google/uuid"

	"yomu/internal/selection"
)

const (
	sessionReaderKey = "reader_id"
	localsReaderKey  = "reader"
)

// ReaderMiddleware binds every request to the reader's selection session.
type ReaderMiddleware struct {
	registry *selection.Registry
}

// NewReaderMiddleware creates a new reader middleware instance.
func NewReaderMiddleware(registry *selection.Registry) *ReaderMiddleware {
	return &ReaderMiddleware{registry: registry}
}

// Attach assigns a reader ID on first visit and stores the reader's
// selection session in Locals. Requires the session middleware.
func (m *ReaderMiddleware) Attach(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}

	id, _ := sess.Get(sessionReaderKey).(string)
	if id == "" {
		id = uuid.NewString()
		sess.Set(sessionReaderKey, id)
	}

	c.Locals(localsReaderKey, m.registry.Get(id))
	return c.Next()
}

// Reader returns the selection session attached by Attach, or nil.
func Reader(c fiber.Ctx) *selection.Session {
	s, _ := c.Locals(localsReaderKey).(*selection.Session)
	return s
}
