package models

type Contact struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Phone          *string `json:"phone"`
	ProfilePicture *string `json:"profile_picture"`
	IsGroup        bool    `json:"is_group"`
}
