package models

// User is an immutable feed author
type User struct {
	ID     string `json:"id" gorm:"primaryKey;size:64"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}
