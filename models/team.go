// models/team.go
package models

import "time"

type Team struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	TeamName string `json:"teamName" gorm:"uniqueIndex;not null;size:100"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Players []Player `json:"players,omitempty" gorm:"foreignKey:TeamID"`
}

func (Team) TableName() string {
	return "teams"
}
