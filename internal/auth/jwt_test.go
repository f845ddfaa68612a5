package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mutfak-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const testSecret = "test-secret-test-secret-test-secret!"

func newTestApp(secret string) *fiber.App {
	app := fiber.New()
	app.Use(JWTMiddleware(secret))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals(CtxUserIDKey)})
	})
	return app
}

func TestTokenRoundTrip(t *testing.T) {
	app := newTestApp(testSecret)

	user := models.User{ID: 7, Email: "admin@mutfak.local"}
	token, err := GenerateToken(testSecret, &user)
	if err != nil {
		t.Fatalf("token oluşturulamadı: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("istek gönderilemedi: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("geçerli token ile 200 bekleniyordu, gelen: %d", resp.StatusCode)
	}
}

func TestMiddlewareRejectsBadTokens(t *testing.T) {
	app := newTestApp(testSecret)

	cases := map[string]string{
		"header yok":    "",
		"format bozuk":  "Token abc",
		"imza geçersiz": "Bearer abc.def.ghi",
	}
	for name, header := range cases {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: istek gönderilemedi: %v", name, err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s: 401 bekleniyordu, gelen: %d", name, resp.StatusCode)
		}
	}
}

func TestTokenSignedWithOtherSecretRejected(t *testing.T) {
	app := newTestApp(testSecret)

	user := models.User{ID: 7, Email: "admin@mutfak.local"}
	token, err := GenerateToken("baska-bir-secret-baska-bir-secret!!!", &user)
	if err != nil {
		t.Fatalf("token oluşturulamadı: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("istek gönderilemedi: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("yanlış secret ile imzalı token reddedilmeliydi, gelen: %d", resp.StatusCode)
	}
}
