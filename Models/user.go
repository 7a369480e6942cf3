package Models

import "time"

type User struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	Username   string    `json:"username" gorm:"not null;uniqueIndex"`
	Email      string    `json:"email" gorm:"not null;uniqueIndex"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Password   []byte    `json:"-" gorm:"not null"`
	Permission int       `json:"permission" gorm:"default:1"`
	Team       string    `json:"team"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
