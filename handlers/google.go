// handlers/google.go - External login via Google
//
// GET /api/auth/google redirects the browser to the consent screen; the
// callback exchanges the code, upserts the member and lands the browser on
// the frontend's /auth/callback route, which completes the flow by calling
// GET /api/auth/profile with the freshly set session cookie. The callback
// never renders errors itself; failures also redirect home, matching the
// page's behavior.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"footballhub/config"
	"footballhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	stateCookie     = "oauth_state"
	userinfoURL     = "https://www.googleapis.com/oauth2/v2/userinfo"
	exchangeTimeout = 10 * time.Second
)

func googleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  config.Getenv("GOOGLE_CALLBACK_URL", "http://localhost:3000/api/auth/google/callback"),
		Scopes:       []string{"openid", "profile", "email"},
		Endpoint:     google.Endpoint,
	}
}

type googleUserinfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GoogleLogin is the redirect entry point for external login.
func GoogleLogin(c *fiber.Ctx) error {
	conf := googleOAuthConfig()
	if conf.ClientID == "" || conf.ClientSecret == "" {
		return utils.Fail(c, fiber.StatusServiceUnavailable, "Google login is not configured")
	}

	state := uuid.New().String()
	c.Cookie(&fiber.Cookie{
		Name:     stateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Redirect(conf.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
}

// GoogleCallback completes the external login.
func GoogleCallback(c *fiber.Ctx) error {
	frontend := config.Getenv("FRONTEND_URL", "http://localhost:5173")

	state := c.Query("state")
	if state == "" || state != c.Cookies(stateCookie) {
		return c.Redirect(frontend+"/", fiber.StatusTemporaryRedirect)
	}

	code := c.Query("code")
	if code == "" {
		return c.Redirect(frontend+"/", fiber.StatusTemporaryRedirect)
	}

	info, err := fetchGoogleUserinfo(c.Context(), code)
	if err != nil {
		return c.Redirect(frontend+"/", fiber.StatusTemporaryRedirect)
	}

	member, err := memberService.FindOrCreateGoogleMember(info.ID, info.Name)
	if err != nil {
		return c.Redirect(frontend+"/", fiber.StatusTemporaryRedirect)
	}

	token, err := generateToken(member)
	if err != nil {
		return c.Redirect(frontend+"/", fiber.StatusTemporaryRedirect)
	}
	setSessionCookie(c, token)

	return c.Redirect(frontend+"/auth/callback", fiber.StatusTemporaryRedirect)
}

func fetchGoogleUserinfo(ctx context.Context, code string) (*googleUserinfo, error) {
	ctx, cancel := context.WithTimeout(ctx, exchangeTimeout)
	defer cancel()

	conf := googleOAuthConfig()
	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	client := conf.Client(ctx, token)
	resp, err := client.Get(userinfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request returned %d", resp.StatusCode)
	}

	var info googleUserinfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	if info.ID == "" {
		return nil, fmt.Errorf("userinfo response missing id")
	}
	return &info, nil
}
