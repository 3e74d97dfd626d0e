// handlers/players.go - Player endpoints
package handlers

import (
	"strconv"
	"strings"

	"footballhub/models"
	"footballhub/services"
	"footballhub/utils"

	"github.com/gofiber/fiber/v2"
)

// playerRequest carries the create/update payload. Team arrives as a string
// id; empty or "none" clears the assignment on update.
type playerRequest struct {
	PlayerName  string `json:"playerName"`
	Image       string `json:"image"`
	Cost        int    `json:"cost"`
	Information string `json:"information"`
	IsCaptain   bool   `json:"isCaptain"`
	Team        string `json:"team"`
}

func (r playerRequest) toInput() (services.PlayerInput, error) {
	in := services.PlayerInput{
		PlayerName:  r.PlayerName,
		Image:       r.Image,
		Cost:        r.Cost,
		Information: r.Information,
		IsCaptain:   r.IsCaptain,
	}

	team := strings.TrimSpace(r.Team)
	if team != "" && team != "none" && team != "null" {
		id, err := strconv.ParseUint(team, 10, 32)
		if err != nil {
			return in, err
		}
		teamID := uint(id)
		in.TeamID = &teamID
	}
	return in, nil
}

// GetPlayers lists players, optionally filtered.
// GET /api/players?search=&team=
func GetPlayers(c *fiber.Ctx) error {
	var teamID uint
	if team := c.Query("team"); team != "" {
		id, err := strconv.ParseUint(team, 10, 32)
		if err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, "Invalid team filter")
		}
		teamID = uint(id)
	}

	players, err := playerService.ListPlayers(c.Query("search"), teamID)
	if err != nil {
		return failService(c, err)
	}
	if players == nil {
		players = []models.Player{}
	}

	return utils.Success(c, fiber.Map{"players": players})
}

// GetPlayer returns one player with team and comments embedded.
// GET /api/players/:id
func GetPlayer(c *fiber.Ctx) error {
	playerID, err := parseID(c, "id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid player ID")
	}

	player, err := playerService.GetPlayerByID(playerID)
	if err != nil {
		return failService(c, err)
	}

	return utils.Success(c, fiber.Map{"player": player.Detail()})
}

// CreatePlayer creates a player (admin only, enforced by the route).
// POST /api/players
func CreatePlayer(c *fiber.Ctx) error {
	var req playerRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	in, err := req.toInput()
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid team ID")
	}

	player, err := playerService.CreatePlayer(in)
	if err != nil {
		return failService(c, err)
	}
	return utils.Created(c, "Player created successfully", player.Detail())
}

// UpdatePlayer updates a player.
// PUT /api/players/:id
func UpdatePlayer(c *fiber.Ctx) error {
	playerID, err := parseID(c, "id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid player ID")
	}

	var req playerRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	in, err := req.toInput()
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid team ID")
	}

	if _, err := playerService.UpdatePlayer(playerID, in); err != nil {
		return failService(c, err)
	}
	return utils.SuccessMessage(c, "Player updated successfully")
}

// DeletePlayer removes a player and its comments.
// DELETE /api/players/:id
func DeletePlayer(c *fiber.Ctx) error {
	playerID, err := parseID(c, "id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid player ID")
	}

	if err := playerService.DeletePlayer(playerID); err != nil {
		return failService(c, err)
	}
	return utils.SuccessMessage(c, "Player deleted successfully")
}
