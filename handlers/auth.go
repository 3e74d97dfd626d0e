// handlers/auth.go - Credential flows and the profile endpoints
package handlers

import (
	"os"
	"strconv"
	"strings"
	"time"

	"footballhub/middleware"
	"footballhub/models"
	"footballhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type LoginRequest struct {
	Membername string `json:"membername"`
	Password   string `json:"password"`
}

// YearOfBirth accepts either a JSON number or a numeric string; the forms
// post it as a string.
type YearOfBirth int

func (y *YearOfBirth) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*y = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*y = YearOfBirth(n)
	return nil
}

type RegisterRequest struct {
	Membername string      `json:"membername"`
	Password   string      `json:"password"`
	Name       string      `json:"name"`
	YOB        YearOfBirth `json:"YOB"`
}

type UpdateProfileRequest struct {
	Name string      `json:"name"`
	YOB  YearOfBirth `json:"YOB"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Login authenticates a member and issues the session cookie. The member
// snapshot rides at the top level as "user".
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	member, err := memberService.Authenticate(strings.TrimSpace(req.Membername), req.Password)
	if err != nil {
		return failService(c, err)
	}

	token, err := generateToken(member)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, "Failed to create session")
	}
	setSessionCookie(c, token)

	return c.JSON(fiber.Map{
		"success": true,
		"user":    member,
	})
}

// Register creates an account. No session is started; the page tells the
// member to log in.
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if _, err := memberService.Register(req.Membername, req.Password, req.Name, int(req.YOB)); err != nil {
		return failService(c, err)
	}

	return utils.SuccessMessage(c, "Registration successful. You can now login.")
}

// Logout clears the session cookie.
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return utils.SuccessMessage(c, "Logged out")
}

// GetProfile returns the session member plus the comments they authored.
func GetProfile(c *fiber.Ctx) error {
	memberID, err := middleware.GetMemberID(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	member, err := memberService.GetMemberByID(memberID)
	if err != nil {
		return failService(c, err)
	}

	comments, err := commentService.MemberComments(memberID)
	if err != nil {
		return failService(c, err)
	}
	if comments == nil {
		comments = []models.MemberCommentRow{}
	}

	return utils.Success(c, fiber.Map{
		"user":     member,
		"comments": comments,
	})
}

// UpdateProfile patches name and year of birth.
func UpdateProfile(c *fiber.Ctx) error {
	memberID, err := middleware.GetMemberID(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if _, err := memberService.UpdateProfile(memberID, req.Name, int(req.YOB)); err != nil {
		return failService(c, err)
	}

	return utils.SuccessMessage(c, "Profile updated successfully")
}

// ChangePassword verifies the current password and stores the new one.
func ChangePassword(c *fiber.Ctx) error {
	memberID, err := middleware.GetMemberID(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := memberService.ChangePassword(memberID, req.CurrentPassword, req.NewPassword); err != nil {
		return failService(c, err)
	}

	return utils.SuccessMessage(c, "Password changed successfully")
}

// Helper functions

func generateToken(member *models.Member) (string, error) {
	jwtSecret := os.Getenv("JWT_SECRET")

	claims := jwt.MapClaims{
		"member_id":  member.ID,
		"membername": member.Membername,
		"is_admin":   member.IsAdmin,
		"exp":        time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   os.Getenv("APP_ENV") == "production",
	})
}
