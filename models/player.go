// models/player.go
package models

import "time"

type Player struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	PlayerName  string `json:"playerName" gorm:"not null;size:100;index"`
	Image       string `json:"image" gorm:"not null"`
	Cost        int    `json:"cost" gorm:"default:0"`
	Information string `json:"information" gorm:"type:text"`
	IsCaptain   bool   `json:"isCaptain" gorm:"default:false"`

	// A player may be unassigned; reads always resolve the reference.
	TeamID *uint `json:"-" gorm:"index"`
	Team   *Team `json:"team" gorm:"foreignKey:TeamID"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PlayerID"`
}

func (Player) TableName() string {
	return "players"
}

// PlayerDetail is the detail payload: the player with its comments expanded
// to include their authors.
type PlayerDetail struct {
	Player
	Comments []CommentView `json:"comments"`
}

func (p Player) Detail() PlayerDetail {
	comments := make([]CommentView, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, c.View())
	}
	return PlayerDetail{Player: p, Comments: comments}
}
