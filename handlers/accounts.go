// handlers/accounts.go - Member account listing (admin)
package handlers

import (
	"footballhub/models"
	"footballhub/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAccounts lists every member account. The route requires an admin
// session: 401 without a session, 403 for non-admins.
// GET /api/accounts
func GetAccounts(c *fiber.Ctx) error {
	members, err := memberService.ListMembers()
	if err != nil {
		return failService(c, err)
	}
	if members == nil {
		members = []models.Member{}
	}
	return utils.Success(c, members)
}
