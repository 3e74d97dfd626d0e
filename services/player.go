// services/player.go - Player business logic
package services

import (
	"errors"
	"strings"

	"footballhub/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrPlayerNotFound      = errors.New("Player not found")
	ErrPlayerFieldsMissing = errors.New("Player name, image, information and team are required")
)

type PlayerService struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewPlayerService(db *gorm.DB, log *zap.SugaredLogger) *PlayerService {
	return &PlayerService{db: db, log: log}
}

// PlayerInput is the create/update payload. Team may be nil on update to
// clear the assignment; create requires it.
type PlayerInput struct {
	PlayerName  string
	Image       string
	Cost        int
	Information string
	IsCaptain   bool
	TeamID      *uint
}

func (in *PlayerInput) normalize() {
	in.PlayerName = strings.TrimSpace(in.PlayerName)
	in.Image = strings.TrimSpace(in.Image)
	in.Information = strings.TrimSpace(in.Information)
}

// ListPlayers returns players with their team resolved, in insertion order,
// optionally narrowed by a name substring and/or a team id.
func (s *PlayerService) ListPlayers(search string, teamID uint) ([]models.Player, error) {
	query := s.db.Preload("Team").Order("players.id")

	if search = strings.TrimSpace(search); search != "" {
		query = query.Where("LOWER(player_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if teamID != 0 {
		query = query.Where("team_id = ?", teamID)
	}

	var players []models.Player
	if err := query.Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

// GetPlayerByID returns a player with its team and comments embedded.
// Comments come back newest first, ready to render in order received.
func (s *PlayerService) GetPlayerByID(playerID uint) (*models.Player, error) {
	var player models.Player
	err := s.db.Preload("Team").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC").Order("comments.id DESC")
		}).
		Preload("Comments.Author").
		First(&player, playerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

// CreatePlayer creates a player. All descriptive fields and a team are
// required, matching the create dialog's rules.
func (s *PlayerService) CreatePlayer(in PlayerInput) (*models.Player, error) {
	in.normalize()
	if in.PlayerName == "" || in.Image == "" || in.Information == "" || in.TeamID == nil {
		return nil, ErrPlayerFieldsMissing
	}

	if _, err := s.teamExists(*in.TeamID); err != nil {
		return nil, err
	}

	player := &models.Player{
		PlayerName:  in.PlayerName,
		Image:       in.Image,
		Cost:        in.Cost,
		Information: in.Information,
		IsCaptain:   in.IsCaptain,
		TeamID:      in.TeamID,
	}
	if err := s.db.Create(player).Error; err != nil {
		return nil, err
	}

	s.log.Infow("player created", "id", player.ID, "name", player.PlayerName)
	return s.GetPlayerByID(player.ID)
}

// UpdatePlayer updates a player. A nil TeamID clears the assignment.
func (s *PlayerService) UpdatePlayer(playerID uint, in PlayerInput) (*models.Player, error) {
	in.normalize()
	if in.PlayerName == "" || in.Image == "" || in.Information == "" {
		return nil, ErrPlayerFieldsMissing
	}

	var player models.Player
	if err := s.db.First(&player, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	if in.TeamID != nil {
		if _, err := s.teamExists(*in.TeamID); err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{
		"player_name": in.PlayerName,
		"image":       in.Image,
		"cost":        in.Cost,
		"information": in.Information,
		"is_captain":  in.IsCaptain,
		"team_id":     in.TeamID,
	}
	if err := s.db.Model(&player).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetPlayerByID(playerID)
}

// DeletePlayer removes a player and its comments in one transaction.
func (s *PlayerService) DeletePlayer(playerID uint) error {
	var player models.Player
	if err := s.db.First(&player, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlayerNotFound
		}
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("player_id = ?", playerID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Player{}, playerID).Error
	})
	if err != nil {
		return err
	}

	s.log.Infow("player deleted", "id", playerID)
	return nil
}

func (s *PlayerService) teamExists(teamID uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Team{}).Where("id = ?", teamID).Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, ErrTeamNotFound
	}
	return true, nil
}
