// services/team.go - Team business logic
package services

import (
	"errors"
	"strings"

	"footballhub/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrTeamNotFound      = errors.New("Team not found")
	ErrTeamNameRequired  = errors.New("Team name is required")
	ErrDuplicateTeamName = errors.New("A team with this name already exists")
	ErrTeamHasPlayers    = errors.New("Cannot delete a team that still has players")
)

type TeamService struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewTeamService(db *gorm.DB, log *zap.SugaredLogger) *TeamService {
	return &TeamService{db: db, log: log}
}

// ListTeams returns every team, oldest first.
func (s *TeamService) ListTeams() ([]models.Team, error) {
	var teams []models.Team
	if err := s.db.Order("id").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// GetTeamByID returns a single team.
func (s *TeamService) GetTeamByID(teamID uint) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// nameTaken checks the uniqueness rule case-insensitively, optionally
// ignoring one team id (for renames).
func (s *TeamService) nameTaken(name string, excludeID uint) (bool, error) {
	var count int64
	query := s.db.Model(&models.Team{}).Where("LOWER(team_name) = ?", strings.ToLower(name))
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateTeam creates a new team. The name must be non-empty and unique
// regardless of case.
func (s *TeamService) CreateTeam(name string) (*models.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	taken, err := s.nameTaken(name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateTeamName
	}

	team := &models.Team{TeamName: name}
	if err := s.db.Create(team).Error; err != nil {
		return nil, err
	}

	s.log.Infow("team created", "id", team.ID, "name", team.TeamName)
	return team, nil
}

// UpdateTeam renames a team under the same uniqueness rule.
func (s *TeamService) UpdateTeam(teamID uint, name string) (*models.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	team, err := s.GetTeamByID(teamID)
	if err != nil {
		return nil, err
	}

	taken, err := s.nameTaken(name, teamID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateTeamName
	}

	team.TeamName = name
	if err := s.db.Save(team).Error; err != nil {
		return nil, err
	}
	return team, nil
}

// DeleteTeam removes a team. Refused while any player still references it;
// that guard is authoritative here, not in the UI.
func (s *TeamService) DeleteTeam(teamID uint) error {
	if _, err := s.GetTeamByID(teamID); err != nil {
		return err
	}

	var playerCount int64
	if err := s.db.Model(&models.Player{}).Where("team_id = ?", teamID).Count(&playerCount).Error; err != nil {
		return err
	}
	if playerCount > 0 {
		return ErrTeamHasPlayers
	}

	if err := s.db.Delete(&models.Team{}, teamID).Error; err != nil {
		return err
	}

	s.log.Infow("team deleted", "id", teamID)
	return nil
}
