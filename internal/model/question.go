package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Question struct {
	ID            uint                        `gorm:"primarykey" json:"id"`
	Scenario      string                      `json:"scenario" gorm:"type:text;not null"`
	Options       datatypes.JSONSlice[string] `json:"options" gorm:"not null"`
	CorrectAnswer int                         `json:"correct_answer" gorm:"not null"` // zero-based index into Options
	Explanation   string                      `json:"explanation" gorm:"type:text;not null"`
	Specialty     string                      `json:"specialty" gorm:"not null;index"` // "Internal Medicine", "Surgery", ...
	Format        string                      `json:"format" gorm:"not null"`          // "clinical scenario", "basic sciences", ...
	CreatedAt     time.Time                   `json:"created_at" gorm:"index"`
	UpdatedAt     time.Time                   `json:"updated_at"`
	DeletedAt     gorm.DeletedAt              `gorm:"index" json:"-"`
}

// HasValidAnswer reports whether CorrectAnswer indexes into Options.
func (q *Question) HasValidAnswer() bool {
	return q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options)
}
