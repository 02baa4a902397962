package middleware

import (
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"yomu/internal/selection"
)

func newReaderApp(registry *selection.Registry) *fiber.App {
	app := fiber.New()
	sessionMiddleware, _ := session.NewWithStore(session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	app.Use(sessionMiddleware)
	app.Use(NewReaderMiddleware(registry).Attach)

	app.Get("/whoami", func(c fiber.Ctx) error {
		r := Reader(c)
		if r == nil {
			return c.Status(500).SendString("no reader")
		}
		return c.SendString(r.ID())
	})
	return app
}

func TestReaderMiddleware_StableAcrossRequests(t *testing.T) {
	registry := selection.NewRegistry()
	app := newReaderApp(registry)

	resp, err := app.Test(httpGet(t, "/whoami"))
	if err != nil {
		t.Fatalf("request 1 failed: %v", err)
	}
	first := readBody(t, resp)
	if first == "" {
		t.Fatal("request 1: empty reader id")
	}
	cookies := resp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("request 1: no session cookie returned")
	}

	req := httpGet(t, "/whoami")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp2, err := app.Test(req)
	if err != nil {
		t.Fatalf("request 2 failed: %v", err)
	}
	if second := readBody(t, resp2); second != first {
		t.Errorf("reader id changed: %q then %q", first, second)
	}
	if registry.Len() != 1 {
		t.Errorf("registry has %d sessions, want 1", registry.Len())
	}
}

func TestReaderMiddleware_DistinctReaders(t *testing.T) {
	registry := selection.NewRegistry()
	app := newReaderApp(registry)

	for range 2 {
		resp, err := app.Test(httpGet(t, "/whoami"))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		readBody(t, resp)
	}
	if registry.Len() != 2 {
		t.Errorf("registry has %d sessions, want 2", registry.Len())
	}
}

func TestReader_WithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		if Reader(c) != nil {
			t.Error("expected nil reader without middleware")
		}
		return c.SendStatus(http.StatusNoContent)
	})
	if _, err := app.Test(httpGet(t, "/")); err != nil {
		t.Fatalf("request failed: %v", err)
	}
}

func httpGet(t *testing.T, path string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		t.Fatal(err)
	}
	return req
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}
