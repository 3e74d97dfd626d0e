// handlers/teams.go - Team endpoints
package handlers

import (
	"strconv"

	"footballhub/models"
	"footballhub/utils"

	"github.com/gofiber/fiber/v2"
)

type teamRequest struct {
	TeamName string `json:"teamName"`
}

// GetTeams returns every team as a bare list.
// GET /api/teams
func GetTeams(c *fiber.Ctx) error {
	teams, err := teamService.ListTeams()
	if err != nil {
		return failService(c, err)
	}
	if teams == nil {
		teams = []models.Team{}
	}
	return utils.Success(c, teams)
}

// GetTeam returns a single team.
// GET /api/teams/:id
func GetTeam(c *fiber.Ctx) error {
	teamID, err := parseID(c, "id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid team ID")
	}

	team, err := teamService.GetTeamByID(teamID)
	if err != nil {
		return failService(c, err)
	}
	return utils.Success(c, team)
}

// CreateTeam creates a new team (admin only, enforced by the route).
// POST /api/teams
func CreateTeam(c *fiber.Ctx) error {
	var req teamRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	team, err := teamService.CreateTeam(req.TeamName)
	if err != nil {
		return failService(c, err)
	}
	return utils.Created(c, "Team created successfully", team)
}

// UpdateTeam renames a team.
// PUT /api/teams/:id
func UpdateTeam(c *fiber.Ctx) error {
	teamID, err := parseID(c, "id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid team ID")
	}

	var req teamRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if _, err := teamService.UpdateTeam(teamID, req.TeamName); err != nil {
		return failService(c, err)
	}
	return utils.SuccessMessage(c, "Team updated successfully")
}

// DeleteTeam removes a team; refused while the roster is non-empty.
// DELETE /api/teams/:id
func DeleteTeam(c *fiber.Ctx) error {
	teamID, err := parseID(c, "id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Invalid team ID")
	}

	if err := teamService.DeleteTeam(teamID); err != nil {
		return failService(c, err)
	}
	return utils.SuccessMessage(c, "Team deleted successfully")
}

func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
