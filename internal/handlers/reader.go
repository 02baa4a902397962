package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"yomu/internal/config"
	"yomu/internal/disambig"
	"yomu/internal/gateway"
	"yomu/internal/middleware"
	"yomu/internal/selection"
	"yomu/internal/service"
	"yomu/internal/validation"
)

// ReaderHandler serves the reading UI: a query form, the current sentence
// and the detail panel of the hovered word.
type ReaderHandler struct {
	looker   selection.Looker
	resolver *disambig.Resolver
	cfg      *config.Config
}

// NewReaderHandler creates a new reader handler. looker is either the
// in-process lookup service or a gateway client for a remote one.
func NewReaderHandler(looker selection.Looker, resolver *disambig.Resolver, cfg *config.Config) *ReaderHandler {
	return &ReaderHandler{looker: looker, resolver: resolver, cfg: cfg}
}

// Index renders the form and the reader's current sentence.
func (h *ReaderHandler) Index(c fiber.Ctx) error {
	reader := middleware.Reader(c)
	if reader == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "reader session unavailable")
	}
	return h.renderIndex(c, reader, "")
}

// Submit looks up the submitted query and replaces the reader's sentence.
// A failed lookup keeps the previous sentence on screen.
func (h *ReaderHandler) Submit(c fiber.Ctx) error {
	reader := middleware.Reader(c)
	if reader == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "reader session unavailable")
	}

	query := validation.NormalizeQuery(c.FormValue("query"))
	if valid, msg := validation.ValidateQuery(query); !valid {
		c.Status(fiber.StatusUnprocessableEntity)
		return h.renderIndex(c, reader, msg)
	}

	if err := reader.Lookup(c.Context(), h.looker, query); err != nil {
		if !errors.Is(err, selection.ErrSuperseded) {
			log.Printf("Lookup failed for reader %s: %v", reader.ID(), err)
		}
		c.Status(lookupErrorStatus(err))
		return h.renderIndex(c, reader, lookupErrorMessage(err))
	}

	return c.Redirect().Status(fiber.StatusSeeOther).To("/")
}

// Select focuses the word at :index and returns its detail panel.
func (h *ReaderHandler) Select(c fiber.Ctx) error {
	reader := middleware.Reader(c)
	if reader == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "reader session unavailable")
	}

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return htmxError(c, "Invalid word index")
	}
	if err := reader.SelectWord(index); err != nil {
		return htmxError(c, "That word is no longer on screen. Look the sentence up again.")
	}

	word, _ := reader.SelectedWord()
	return c.Render("partials/word", fiber.Map{
		"Word": BuildWordDetail(h.resolver, index, word),
	}, "")
}

// Clear drops the selection and returns an empty detail panel.
func (h *ReaderHandler) Clear(c fiber.Ctx) error {
	reader := middleware.Reader(c)
	if reader == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "reader session unavailable")
	}
	reader.Clear()
	return c.Render("partials/word", fiber.Map{}, "")
}

func (h *ReaderHandler) renderIndex(c fiber.Ctx, reader *selection.Session, errMsg string) error {
	sentence := reader.Sentence()
	selected := reader.SelectedIndex()

	data := fiber.Map{
		"Title":    "Read",
		"Query":    reader.Query(),
		"Words":    BuildSentenceView(sentence, selected),
		"MaxQuery": validation.MaxQueryLength,
		"Error":    errMsg,
	}
	if word, ok := reader.SelectedWord(); ok {
		data["Word"] = BuildWordDetail(h.resolver, selected, word)
	}
	return c.Render("index", MergeBranding(data, h.cfg))
}

func lookupErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidQuery), errors.Is(err, service.ErrEmptyAnalysis):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, selection.ErrSuperseded):
		return fiber.StatusConflict
	case errors.Is(err, gateway.ErrTransport), errors.Is(err, gateway.ErrProtocol), errors.Is(err, gateway.ErrDecode):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func lookupErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidQuery):
		return "That query cannot be looked up."
	case errors.Is(err, service.ErrEmptyAnalysis):
		return "No words were found in that query."
	case errors.Is(err, selection.ErrSuperseded):
		return "A newer lookup replaced this one."
	case errors.Is(err, gateway.ErrTransport):
		return "The lookup service could not be reached. Try again."
	case errors.Is(err, gateway.ErrProtocol):
		return "The lookup service rejected the query."
	case errors.Is(err, gateway.ErrDecode):
		return "The lookup service sent a response that could not be read."
	default:
		return "The lookup failed. Try again."
	}
}
