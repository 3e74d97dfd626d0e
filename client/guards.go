// client/guards.go - Client-side form guards
//
// These checks short-circuit before any network call. They are a courtesy,
// not the authority: the server enforces every one of them again.
package client

import (
	"errors"
	"strings"

	"footballhub/models"
)

var (
	ErrGuardRating        = errors.New("please provide a rating between 1 and 3 and a comment")
	ErrGuardPasswordMatch = errors.New("new passwords do not match")
	ErrGuardTeamName      = errors.New("team name is required")
	ErrGuardDuplicateTeam = errors.New("a team with this name already exists")
)

// CheckComment refuses a comment with no rating chosen or empty content.
func CheckComment(rating int, content string) error {
	if rating < 1 || rating > 3 || strings.TrimSpace(content) == "" {
		return ErrGuardRating
	}
	return nil
}

// CheckPasswordMatch refuses a password change when the confirmation does
// not match; the endpoint is never called in that case.
func CheckPasswordMatch(newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return ErrGuardPasswordMatch
	}
	return nil
}

// CheckNewTeamName refuses an empty name or one that case-insensitively
// matches a team in the already-fetched list.
func CheckNewTeamName(teams []models.Team, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrGuardTeamName
	}
	for _, t := range teams {
		if strings.EqualFold(t.TeamName, name) {
			return ErrGuardDuplicateTeam
		}
	}
	return nil
}
