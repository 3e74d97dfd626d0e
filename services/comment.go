// services/comment.go - Comment business logic
package services

import (
	"errors"
	"strings"

	"footballhub/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrCommentNotFound  = errors.New("Comment not found")
	ErrInvalidRating    = errors.New("Rating must be 1, 2 or 3")
	ErrEmptyContent     = errors.New("Comment content is required")
	ErrAlreadyCommented = errors.New("You have already commented on this player")
	ErrAdminCannotRate  = errors.New("Admins cannot comment on players")
	ErrNotCommentAuthor = errors.New("You can only modify your own comments")
)

type CommentService struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewCommentService(db *gorm.DB, log *zap.SugaredLogger) *CommentService {
	return &CommentService{db: db, log: log}
}

func validateComment(rating int, content string) error {
	if rating < 1 || rating > 3 {
		return ErrInvalidRating
	}
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	return nil
}

// AddComment creates a comment on a player. Rating is confined to {1,2,3},
// content must be non-empty, admins are excluded, and a member gets one
// comment per player; a second attempt is refused here, not just hidden
// by the form.
func (s *CommentService) AddComment(playerID, authorID uint, rating int, content string) (*models.Comment, error) {
	if err := validateComment(rating, content); err != nil {
		return nil, err
	}

	var author models.Member
	if err := s.db.First(&author, authorID).Error; err != nil {
		return nil, err
	}
	if author.IsAdmin {
		return nil, ErrAdminCannotRate
	}

	var player models.Player
	if err := s.db.First(&player, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	var existing int64
	if err := s.db.Model(&models.Comment{}).
		Where("player_id = ? AND author_id = ?", playerID, authorID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrAlreadyCommented
	}

	comment := &models.Comment{
		Rating:   rating,
		Content:  strings.TrimSpace(content),
		AuthorID: authorID,
		PlayerID: playerID,
	}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}

	s.log.Infow("comment added", "player", playerID, "author", authorID, "rating", rating)
	return comment, nil
}

// EditComment updates a member's own comment on a player.
func (s *CommentService) EditComment(playerID, commentID, memberID uint, rating int, content string) (*models.Comment, error) {
	if err := validateComment(rating, content); err != nil {
		return nil, err
	}

	comment, err := s.ownedComment(playerID, commentID, memberID)
	if err != nil {
		return nil, err
	}

	comment.Rating = rating
	comment.Content = strings.TrimSpace(content)
	if err := s.db.Save(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a member's own comment on a player.
func (s *CommentService) DeleteComment(playerID, commentID, memberID uint) error {
	comment, err := s.ownedComment(playerID, commentID, memberID)
	if err != nil {
		return err
	}
	return s.db.Delete(comment).Error
}

// MemberComments returns the comments a member authored, joined with the
// player names, newest first. Feeds the profile page's table.
func (s *CommentService) MemberComments(memberID uint) ([]models.MemberCommentRow, error) {
	var rows []models.MemberCommentRow
	err := s.db.Model(&models.Comment{}).
		Select("comments.player_id AS player_id, players.player_name AS player_name, comments.rating, comments.content, comments.created_at").
		Joins("JOIN players ON players.id = comments.player_id").
		Where("comments.author_id = ?", memberID).
		Order("comments.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *CommentService) ownedComment(playerID, commentID, memberID uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.Where("id = ? AND player_id = ?", commentID, playerID).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if comment.AuthorID != memberID {
		return nil, ErrNotCommentAuthor
	}
	return &comment, nil
}
