// handlers/comments.go - Comment endpoints
package handlers

import (
	"footballhub/middleware"
	"footballhub/utils"

	"github.com/gofiber/fiber/v2"
)

type commentRequest struct {
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}

// AddComment posts a new comment on a player.
// POST /api/players/:id/comments
func AddComment(c *fiber.Ctx) error {
	memberID, err := middleware.GetMemberID(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	playerID, err := parseID(c, "id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid player ID")
	}

	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if _, err := commentService.AddComment(playerID, memberID, req.Rating, req.Content); err != nil {
		return failService(c, err)
	}
	return utils.SuccessMessage(c, "Comment added successfully")
}

// EditComment updates the caller's own comment.
// PUT /api/players/:id/comments/:cid/edit
func EditComment(c *fiber.Ctx) error {
	memberID, err := middleware.GetMemberID(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	playerID, err := parseID(c, "id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid player ID")
	}
	commentID, err := parseID(c, "cid")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid comment ID")
	}

	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if _, err := commentService.EditComment(playerID, commentID, memberID, req.Rating, req.Content); err != nil {
		return failService(c, err)
	}
	return utils.SuccessMessage(c, "Comment updated successfully")
}

// DeleteComment removes the caller's own comment.
// DELETE /api/players/:id/comments/:cid/delete
func DeleteComment(c *fiber.Ctx) error {
	memberID, err := middleware.GetMemberID(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	playerID, err := parseID(c, "id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid player ID")
	}
	commentID, err := parseID(c, "cid")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid comment ID")
	}

	if err := commentService.DeleteComment(playerID, commentID, memberID); err != nil {
		return failService(c, err)
	}
	return utils.SuccessMessage(c, "Comment deleted successfully")
}
