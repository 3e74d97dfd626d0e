// models/member.go
package models

import "time"

// Member is a registered account. Password never leaves the server; the
// json tag keeps it out of every response without per-handler scrubbing.
type Member struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	Membername string  `json:"membername" gorm:"uniqueIndex;not null;size:100"`
	Password   string  `json:"-" gorm:"not null"`
	Name       string  `json:"name" gorm:"not null;size:100"`
	YOB        int     `json:"YOB" gorm:"column:yob"`
	IsAdmin    bool    `json:"isAdmin" gorm:"default:false"`
	GoogleID   *string `json:"googleId,omitempty" gorm:"uniqueIndex;size:255"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`

	Comments []Comment `json:"-" gorm:"foreignKey:AuthorID"`
}

func (Member) TableName() string {
	return "members"
}

// Author is the slimmed-down member shape attached to comments.
type Author struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Membername string `json:"membername"`
}

func (m Member) AsAuthor() Author {
	return Author{ID: m.ID, Name: m.Name, Membername: m.Membername}
}
