package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	SubscriptionInactive = "inactive"
	SubscriptionActive   = "active"
)

type User struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	Email              string    `json:"email" gorm:"not null;uniqueIndex"`
	Password           string    `json:"-" gorm:"not null"` // bcrypt hash
	Role               string    `json:"role" gorm:"not null;default:'user'"`
	SubscriptionStatus string    `json:"subscription_status" gorm:"not null;default:'inactive'"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
