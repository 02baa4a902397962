package api

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"

	"yomu/internal/models"
	"yomu/internal/service"
)

// Looker analyzes a query into an annotated sentence.
type Looker interface {
	Lookup(ctx context.Context, query string) (models.Sentence, error)
}

// LookupRequest is the body of POST /api/lookup.
type LookupRequest struct {
	Query string `json:"query" form:"query"`
}

// LookupHandler serves the lookup endpoint.
type LookupHandler struct {
	svc Looker
}

// NewLookupHandler creates a new API lookup handler.
func NewLookupHandler(svc Looker) *LookupHandler {
	return &LookupHandler{svc: svc}
}

// Lookup analyzes the query and responds with the sentence as a bare JSON array.
func (h *LookupHandler) Lookup(c fiber.Ctx) error {
	var req LookupRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	sentence, err := h.svc.Lookup(c.Context(), req.Query)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuery):
			return jsonError(c, fiber.StatusBadRequest, strings.TrimPrefix(err.Error(), service.ErrInvalidQuery.Error()+": "))
		case errors.Is(err, service.ErrEmptyAnalysis):
			return jsonError(c, fiber.StatusUnprocessableEntity, "query produced no words")
		default:
			log.Printf("Lookup failed: %v", err)
			return jsonError(c, fiber.StatusInternalServerError, "lookup failed")
		}
	}

	data, err := models.EncodeSentence(sentence)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to encode sentence")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(data)
}
