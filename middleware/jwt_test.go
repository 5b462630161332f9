package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"coursecraft/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func setupProtectedApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:             "test-secret",
		TokenExpireMinutes: 30,
	}

	app := fiber.New()
	app.Get("/protected", JWTMiddleware, func(c *fiber.Ctx) error {
		userID := c.Locals("userId").(uint)
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{"userId": userID})
	})
	return app
}

func TestJWTRoundTrip(t *testing.T) {
	app := setupProtectedApp(t)

	token, err := GenerateJWT(42, "Ada", "ada@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("valid token rejected with %d", resp.StatusCode)
	}
}

func TestJWTRejectsBadTokens(t *testing.T) {
	app := setupProtectedApp(t)

	cases := map[string]string{
		"missing header": "",
		"no bearer":      "token-without-prefix",
		"garbage":        "Bearer not.a.token",
	}

	for name, header := range cases {
		req := httptest.NewRequest("GET", "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}

		resp, err := app.Test(req, 5000)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", name, resp.StatusCode)
		}
	}
}

func TestJWTRejectsNonNumericUserID(t *testing.T) {
	app := setupProtectedApp(t)

	// Well-signed token whose userId claim is not a number.
	claims := jwt.MapClaims{
		"userId": "forty-two",
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.AppConfig.JWTKey))
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("token with malformed userId claim accepted: %d", resp.StatusCode)
	}
}

func TestJWTRejectsWrongKey(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "other-secret", TokenExpireMinutes: 30}
	token, err := GenerateJWT(42, "Ada", "ada@example.com")
	if err != nil {
		t.Fatal(err)
	}

	app := setupProtectedApp(t) // resets the key to test-secret

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("token signed with a different key accepted: %d", resp.StatusCode)
	}
}
