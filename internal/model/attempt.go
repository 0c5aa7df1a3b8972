package model

import "time"

// Attempt is append-only: no update or delete paths exist for it.
type Attempt struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UserID         uint      `json:"user_id" gorm:"not null;index"`
	User           User      `json:"-" gorm:"foreignKey:UserID"`
	QuestionID     uint      `json:"question_id" gorm:"not null;index"`
	Question       Question  `json:"-" gorm:"foreignKey:QuestionID"`
	SelectedAnswer int       `json:"selected_answer" gorm:"not null"`
	IsCorrect      bool      `json:"is_correct" gorm:"not null"`
	Timestamp      time.Time `json:"timestamp" gorm:"autoCreateTime;index"`
}
