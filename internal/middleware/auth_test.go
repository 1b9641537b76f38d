package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", Protected(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": GetUserID(c).String()})
	})
	return app
}

func TestProtectedAcceptsValidToken(t *testing.T) {
	userID := uuid.New()
	token, err := GenerateToken(userID, "alice@example.io")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	app := protectedApp()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if want := userID.String(); !strings.Contains(string(body), want) {
		t.Errorf("body %q missing user id %q", body, want)
	}
}

func TestProtectedRejectsMissingHeader(t *testing.T) {
	app := protectedApp()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestProtectedRejectsMalformedToken(t *testing.T) {
	app := protectedApp()

	for _, header := range []string{"Bearer not-a-token", "Basic abc123", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, resp.StatusCode)
		}
	}
}
