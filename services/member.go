// services/member.go - Member accounts, credentials and profile logic
package services

import (
	"errors"
	"strings"

	"footballhub/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMemberNotFound       = errors.New("Member not found")
	ErrInvalidCredentials   = errors.New("Invalid membername or password")
	ErrMembernameTaken      = errors.New("Membername already taken")
	ErrMissingCredentials   = errors.New("Membername and password are required")
	ErrPasswordTooShort     = errors.New("Password must be at least 6 characters")
	ErrNameRequired         = errors.New("Name is required")
	ErrWrongCurrentPassword = errors.New("Current password is incorrect")
	ErrGoogleLinkedAccount  = errors.New("Google-linked accounts cannot change their password here")
)

type MemberService struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewMemberService(db *gorm.DB, log *zap.SugaredLogger) *MemberService {
	return &MemberService{db: db, log: log}
}

// Register creates a new member account. It does not start a session; the
// register page tells the member to log in afterwards.
func (s *MemberService) Register(membername, password, name string, yob int) (*models.Member, error) {
	membername = strings.TrimSpace(membername)
	name = strings.TrimSpace(name)

	if membername == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}
	if name == "" {
		return nil, ErrNameRequired
	}

	var existing models.Member
	if err := s.db.Where("membername = ?", membername).First(&existing).Error; err == nil {
		return nil, ErrMembernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	member := &models.Member{
		Membername: membername,
		Password:   string(hashed),
		Name:       name,
		YOB:        yob,
	}
	if err := s.db.Create(member).Error; err != nil {
		return nil, err
	}

	s.log.Infow("member registered", "id", member.ID, "membername", member.Membername)
	return member, nil
}

// Authenticate verifies credentials and returns the member on success.
func (s *MemberService) Authenticate(membername, password string) (*models.Member, error) {
	if membername == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	var member models.Member
	if err := s.db.Where("membername = ?", membername).First(&member).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &member, nil
}

// GetMemberByID returns a single member.
func (s *MemberService) GetMemberByID(memberID uint) (*models.Member, error) {
	var member models.Member
	if err := s.db.First(&member, memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

// ListMembers returns every account, oldest first. The accounts page shows
// this to admins only; the handler enforces that.
func (s *MemberService) ListMembers() ([]models.Member, error) {
	var members []models.Member
	if err := s.db.Order("id").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// UpdateProfile patches name and year of birth only, leaving every other
// stored field as it was.
func (s *MemberService) UpdateProfile(memberID uint, name string, yob int) (*models.Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	member, err := s.GetMemberByID(memberID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(member).Updates(map[string]interface{}{
		"name": name,
		"yob":  yob,
	}).Error; err != nil {
		return nil, err
	}

	member.Name = name
	member.YOB = yob
	return member, nil
}

// ChangePassword verifies the current password and stores the new one.
// Refused outright for Google-linked accounts.
func (s *MemberService) ChangePassword(memberID uint, currentPassword, newPassword string) error {
	member, err := s.GetMemberByID(memberID)
	if err != nil {
		return err
	}

	if member.GoogleID != nil {
		return ErrGoogleLinkedAccount
	}
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(currentPassword)); err != nil {
		return ErrWrongCurrentPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.db.Model(member).Update("password", string(hashed)).Error
}

// FindOrCreateGoogleMember resolves the member for an external login,
// creating the account on first sign-in. The generated password is random
// and unusable; such accounts authenticate through Google only.
func (s *MemberService) FindOrCreateGoogleMember(googleID, name string) (*models.Member, error) {
	var member models.Member
	err := s.db.Where("google_id = ?", googleID).First(&member).Error
	if err == nil {
		return &member, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if name = strings.TrimSpace(name); name == "" {
		name = "Google Member"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(uuid.New().String()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	member = models.Member{
		Membername: "google_" + uuid.New().String()[:8],
		Password:   string(hashed),
		Name:       name,
		GoogleID:   &googleID,
	}
	if err := s.db.Create(&member).Error; err != nil {
		return nil, err
	}

	s.log.Infow("google member created", "id", member.ID, "membername", member.Membername)
	return &member, nil
}
