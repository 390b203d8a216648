package users

import "time"

// User is one registered person. A nil Password means the account was
// created through an external identity provider.
type User struct {
	ID         uint    `gorm:"primaryKey"`
	Email      string  `gorm:"size:255;uniqueIndex:idx_users_email;not null"`
	Password   *string `gorm:"size:255"`
	AvatarURL  *string
	ProviderID *string `gorm:"size:255"`
	Fullname   string  `gorm:"size:255;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Response is the public JSON shape of a User. The password never leaves
// the service.
type Response struct {
	ID         uint    `json:"id"`
	Email      string  `json:"email"`
	AvatarURL  *string `json:"avatarUrl"`
	ProviderID *string `json:"providerId"`
	Fullname   string  `json:"fullname"`
}

func ToResponse(u *User) Response {
	return Response{
		ID:         u.ID,
		Email:      u.Email,
		AvatarURL:  u.AvatarURL,
		ProviderID: u.ProviderID,
		Fullname:   u.Fullname,
	}
}
