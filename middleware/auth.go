// middleware/auth.go
package middleware

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// The browser carries the session as an HttpOnly cookie; non-browser clients
// may send the same token as a Bearer header instead.
const SessionCookie = "token"

func extractToken(c *fiber.Ctx) string {
	if token := c.Cookies(SessionCookie); token != "" {
		return token
	}
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	return ""
}

func parseClaims(tokenString string) (jwt.MapClaims, bool) {
	jwtSecret := os.Getenv("JWT_SECRET")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(401, "Invalid signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, false
	}

	return claims, true
}

func setLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	c.Locals("memberId", claims["member_id"])
	c.Locals("membername", claims["membername"])
	c.Locals("isAdmin", claims["is_admin"])
}

// AuthMiddleware requires a valid session.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := extractToken(c)
	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Not authenticated"})
	}

	claims, ok := parseClaims(tokenString)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Invalid or expired session"})
	}

	setLocals(c, claims)
	return c.Next()
}

// OptionalAuthMiddleware populates the session locals when a valid token is
// present but lets anonymous requests through.
func OptionalAuthMiddleware(c *fiber.Ctx) error {
	if tokenString := extractToken(c); tokenString != "" {
		if claims, ok := parseClaims(tokenString); ok {
			setLocals(c, claims)
		}
	}
	return c.Next()
}

// AdminMiddleware requires a valid session belonging to an admin. The flag is
// re-checked here from the token, never trusted from the request body.
func AdminMiddleware(c *fiber.Ctx) error {
	tokenString := extractToken(c)
	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Not authenticated"})
	}

	claims, ok := parseClaims(tokenString)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Invalid or expired session"})
	}

	isAdmin, ok := claims["is_admin"].(bool)
	if !ok || !isAdmin {
		return c.Status(403).JSON(fiber.Map{"success": false, "message": "Admin privileges required"})
	}

	setLocals(c, claims)
	return c.Next()
}

// GetMemberID returns the authenticated member's id from the request context.
func GetMemberID(c *fiber.Ctx) (uint, error) {
	memberID := c.Locals("memberId")
	if memberID == nil {
		return 0, fiber.NewError(401, "Not authenticated")
	}

	// JWT claims decode numbers as float64.
	switch id := memberID.(type) {
	case float64:
		return uint(id), nil
	case uint:
		return id, nil
	}

	return 0, fiber.NewError(401, "Invalid member ID format")
}

// IsAdmin reports whether the current session belongs to an admin.
func IsAdmin(c *fiber.Ctx) bool {
	isAdmin := c.Locals("isAdmin")
	if isAdmin == nil {
		return false
	}
	if admin, ok := isAdmin.(bool); ok {
		return admin
	}
	return false
}
