// middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-test-secret-test-secret!"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func memberClaims(admin bool, exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"member_id":  float64(42),
		"membername": "diego",
		"is_admin":   admin,
		"exp":        exp.Unix(),
	}
}

// probeApp exposes one guarded route that echoes the session locals.
func probeApp(guard fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/probe", guard, func(c *fiber.Ctx) error {
		id, err := GetMemberID(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"memberId": id, "isAdmin": IsAdmin(c)})
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := probeApp(AuthMiddleware)
	valid := signToken(t, testSecret, memberClaims(false, time.Now().Add(time.Hour)))

	tests := []struct {
		name       string
		decorate   func(*http.Request)
		wantStatus int
	}{
		{
			name:       "no token",
			decorate:   func(*http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "valid cookie",
			decorate: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookie, Value: valid})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "valid bearer header",
			decorate: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+valid)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "malformed bearer header",
			decorate: func(r *http.Request) {
				r.Header.Set("Authorization", valid)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			decorate: func(r *http.Request) {
				expired := signToken(t, testSecret, memberClaims(false, time.Now().Add(-time.Hour)))
				r.AddCookie(&http.Cookie{Name: SessionCookie, Value: expired})
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "token signed with another secret",
			decorate: func(r *http.Request) {
				forged := signToken(t, "some-other-secret-some-other-secret!", memberClaims(true, time.Now().Add(time.Hour)))
				r.AddCookie(&http.Cookie{Name: SessionCookie, Value: forged})
			},
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			tt.decorate(req)
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestCookieWinsOverHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := probeApp(AuthMiddleware)
	valid := signToken(t, testSecret, memberClaims(false, time.Now().Add(time.Hour)))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "garbage"})
	req.Header.Set("Authorization", "Bearer "+valid)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "cookie takes precedence even when invalid")
}

func TestAdminMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := probeApp(AdminMiddleware)

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{
			name:       "no token",
			token:      "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "member token",
			token:      signToken(t, testSecret, memberClaims(false, time.Now().Add(time.Hour))),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin token",
			token:      signToken(t, testSecret, memberClaims(true, time.Now().Add(time.Hour))),
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tt.token != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.token})
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	app := fiber.New()
	app.Get("/probe", OptionalAuthMiddleware, func(c *fiber.Ctx) error {
		if _, err := GetMemberID(c); err != nil {
			return c.JSON(fiber.Map{"anonymous": true})
		}
		return c.JSON(fiber.Map{"anonymous": false})
	})

	t.Run("anonymous passes through", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/probe", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("garbage token passes through as anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "garbage"})
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
