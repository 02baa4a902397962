package handlers

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/gofiber/template/html/v3"

	"yomu/internal/config"
	"yomu/internal/disambig"
	"yomu/internal/gateway"
	"yomu/internal/middleware"
	"yomu/internal/models"
	"yomu/internal/selection"
)

type stubLooker struct {
	sentence models.Sentence
	err      error
	queries  []string
}

func (s *stubLooker) Lookup(ctx context.Context, query string) (models.Sentence, error) {
	s.queries = append(s.queries, query)
	return s.sentence, s.err
}

func newReaderApp(t *testing.T, looker selection.Looker) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		Views:       html.New("../../views", ".html"),
		ViewsLayout: "layouts/main",
	})
	sessionMiddleware, _ := session.NewWithStore(session.Config{CookieHTTPOnly: true})
	app.Use(sessionMiddleware)
	app.Use(middleware.NewReaderMiddleware(selection.NewRegistry()).Attach)

	cfg := &config.Config{SiteTitle: "Yomu", SiteTagline: "tagline", SiteFooter: "footer"}
	h := NewReaderHandler(looker, disambig.NewResolver(nil), cfg)
	app.Get("/", h.Index)
	app.Post("/lookup", h.Submit)
	app.Post("/words/:index", h.Select)
	app.Delete("/selection", h.Clear)
	return app
}

// client replays the session cookie across requests.
type client struct {
	t       *testing.T
	app     *fiber.App
	cookies []*http.Cookie
}

func (c *client) do(method, path string, form url.Values) (int, string) {
	c.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequest(method, path, body)
	if err != nil {
		c.t.Fatal(err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	resp, err := c.app.Test(req)
	if err != nil {
		c.t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()
	if cks := resp.Cookies(); len(cks) > 0 {
		c.cookies = cks
	}
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestReaderHandler_LookupThenSelect(t *testing.T) {
	looker := &stubLooker{sentence: readerSentence()}
	c := &client{t: t, app: newReaderApp(t, looker)}

	status, body := c.do(http.MethodGet, "/", nil)
	if status != http.StatusOK {
		t.Fatalf("GET / status = %d, body: %s", status, body)
	}
	if !strings.Contains(body, "Hover a word") {
		t.Error("empty reader should show the hover hint")
	}

	status, _ = c.do(http.MethodPost, "/lookup", url.Values{"query": {"とても良かったです。"}})
	if status != http.StatusSeeOther {
		t.Fatalf("POST /lookup status = %d, want 303", status)
	}
	if len(looker.queries) != 1 || looker.queries[0] != "とても良かったです。" {
		t.Errorf("queries = %v", looker.queries)
	}

	status, body = c.do(http.MethodGet, "/", nil)
	if status != http.StatusOK {
		t.Fatalf("GET / status = %d", status)
	}
	for _, w := range []string{"とても", "良かった", "です"} {
		if !strings.Contains(body, w) {
			t.Errorf("page missing word %q", w)
		}
	}
	if !strings.Contains(body, `hx-post="/words/1"`) {
		t.Error("page missing hover target for word 1")
	}

	status, body = c.do(http.MethodPost, "/words/1", nil)
	if status != http.StatusOK {
		t.Fatalf("POST /words/1 status = %d", status)
	}
	if !strings.Contains(body, "did / (have) done") {
		t.Errorf("detail missing auxiliary gloss: %s", body)
	}
	if strings.Contains(body, "rice field") {
		t.Error("detail should be narrowed to the auxiliary entry")
	}
	if strings.Count(body, `class="best-match"`) != 1 {
		t.Errorf("only the narrowed auxiliary token should carry the best-match marker: %s", body)
	}
	if strings.Contains(body, "<html") {
		t.Error("partial must render without layout")
	}
}

func TestReaderHandler_SelectOutOfRange(t *testing.T) {
	c := &client{t: t, app: newReaderApp(t, &stubLooker{sentence: readerSentence()})}
	c.do(http.MethodPost, "/lookup", url.Values{"query": {"とても良かったです。"}})

	tests := []string{"/words/4", "/words/-1", "/words/abc"}
	for _, path := range tests {
		status, body := c.do(http.MethodPost, path, nil)
		if status != http.StatusOK {
			t.Errorf("%s status = %d, want 200 for htmx swap", path, status)
		}
		if !strings.Contains(body, "notice-error") {
			t.Errorf("%s body = %q, want error notice", path, body)
		}
	}
}

func TestReaderHandler_FailedLookupKeepsSentence(t *testing.T) {
	looker := &stubLooker{sentence: readerSentence()}
	c := &client{t: t, app: newReaderApp(t, looker)}
	c.do(http.MethodPost, "/lookup", url.Values{"query": {"とても良かったです。"}})

	looker.err = &gateway.ProtocolError{StatusCode: http.StatusInternalServerError}
	looker.sentence = nil

	status, body := c.do(http.MethodPost, "/lookup", url.Values{"query": {"寒いです。"}})
	if status != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", status)
	}
	if !strings.Contains(body, "rejected the query") {
		t.Errorf("missing protocol error message: %s", body)
	}
	if !strings.Contains(body, "良かった") {
		t.Error("previous sentence should still be shown")
	}
}

func TestReaderHandler_InvalidQuery(t *testing.T) {
	looker := &stubLooker{sentence: readerSentence()}
	c := &client{t: t, app: newReaderApp(t, looker)}

	status, body := c.do(http.MethodPost, "/lookup", url.Values{"query": {"   "}})
	if status != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", status)
	}
	if !strings.Contains(body, "Query is required") {
		t.Errorf("missing validation message: %s", body)
	}
	if len(looker.queries) != 0 {
		t.Error("invalid query must not reach the looker")
	}
}

func TestReaderHandler_Clear(t *testing.T) {
	c := &client{t: t, app: newReaderApp(t, &stubLooker{sentence: readerSentence()})}
	c.do(http.MethodPost, "/lookup", url.Values{"query": {"とても良かったです。"}})
	c.do(http.MethodPost, "/words/0", nil)

	status, body := c.do(http.MethodDelete, "/selection", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, "Hover a word") {
		t.Errorf("cleared panel should show the hint: %s", body)
	}
}

func TestLookupErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"transport", &gateway.TransportError{Err: context.DeadlineExceeded}, http.StatusBadGateway},
		{"decode", &gateway.DecodeError{Err: models.ErrLegacyEntry}, http.StatusBadGateway},
		{"superseded", selection.ErrSuperseded, http.StatusConflict},
		{"other", io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lookupErrorStatus(tt.err); got != tt.want {
				t.Errorf("lookupErrorStatus = %d, want %d", got, tt.want)
			}
		})
	}
}
