// handlers/handlers.go - Shared handler wiring
package handlers

import (
	"errors"

	"footballhub/services"
	"footballhub/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	memberService  *services.MemberService
	teamService    *services.TeamService
	playerService  *services.PlayerService
	commentService *services.CommentService
)

// Init wires the handler package to its services. Must run after the
// database is up.
func Init(db *gorm.DB, log *zap.SugaredLogger) {
	memberService = services.NewMemberService(db, log)
	teamService = services.NewTeamService(db, log)
	playerService = services.NewPlayerService(db, log)
	commentService = services.NewCommentService(db, log)
}

// failService maps a service error onto the response envelope. Business-rule
// failures travel as their own message; anything unrecognized becomes a
// generic 500 so internals never leak.
func failService(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrPlayerNotFound),
		errors.Is(err, services.ErrCommentNotFound),
		errors.Is(err, services.ErrMemberNotFound):
		return utils.Fail(c, fiber.StatusNotFound, err.Error())

	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.Fail(c, fiber.StatusUnauthorized, err.Error())

	case errors.Is(err, services.ErrNotCommentAuthor),
		errors.Is(err, services.ErrAdminCannotRate):
		return utils.Fail(c, fiber.StatusForbidden, err.Error())

	case errors.Is(err, services.ErrTeamNameRequired),
		errors.Is(err, services.ErrDuplicateTeamName),
		errors.Is(err, services.ErrTeamHasPlayers),
		errors.Is(err, services.ErrPlayerFieldsMissing),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrEmptyContent),
		errors.Is(err, services.ErrAlreadyCommented),
		errors.Is(err, services.ErrMembernameTaken),
		errors.Is(err, services.ErrMissingCredentials),
		errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrWrongCurrentPassword),
		errors.Is(err, services.ErrGoogleLinkedAccount):
		return utils.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	return utils.Fail(c, fiber.StatusInternalServerError, "Something went wrong. Please try again later.")
}
