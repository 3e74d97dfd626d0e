// models/comment.go
package models

import "time"

// Comment is a rating (1-3 stars) plus free text left by a member on a player.
// One comment per (author, player); the unique index is the authority, the
// service check just produces a friendlier message.
type Comment struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Rating  int    `json:"rating" gorm:"not null"`
	Content string `json:"content" gorm:"not null;type:text"`

	AuthorID uint    `json:"-" gorm:"not null;index;uniqueIndex:idx_comments_author_player"`
	Author   *Member `json:"-" gorm:"foreignKey:AuthorID"`
	PlayerID uint    `json:"-" gorm:"not null;index;uniqueIndex:idx_comments_author_player"`
	Player   *Player `json:"-" gorm:"foreignKey:PlayerID"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentView is the comment payload embedded on a player detail.
type CommentView struct {
	ID        uint      `json:"id"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// MemberCommentRow is one row of the profile page's own-comments table.
type MemberCommentRow struct {
	PlayerID   uint      `json:"playerId"`
	PlayerName string    `json:"playerName"`
	Rating     int       `json:"rating"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (c Comment) View() CommentView {
	v := CommentView{
		ID:        c.ID,
		Rating:    c.Rating,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
	if c.Author != nil {
		v.Author = c.Author.AsAuthor()
	}
	return v
}
