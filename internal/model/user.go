package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultUserPhoto is the avatar assigned to accounts registered without one.
const DefaultUserPhoto = "https://i.ibb.co/4pDNDk1/avatar.png"

// User represents a registered shop partner account.
type User struct {
	ID        uuid.UUID `json:"_id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Photo     string    `json:"photo" db:"photo"`
	Phone     string    `json:"phone" db:"phone"`
	Whatsapp  string    `json:"whatsapp" db:"whatsapp"`
	Address   string    `json:"address" db:"address"`
	City      string    `json:"city" db:"city"`
	Bio       string    `json:"bio" db:"bio"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Profile is the public view of a user, returned by the API.
// The password hash is never part of it.
type Profile struct {
	ID       uuid.UUID `json:"_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Photo    string    `json:"photo"`
	Phone    string    `json:"phone"`
	Whatsapp string    `json:"whatsapp"`
	Address  string    `json:"address"`
	City     string    `json:"city"`
	Bio      string    `json:"bio"`
}

// PublicProfile projects a user onto its public fields.
func (u *User) PublicProfile() Profile {
	return Profile{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Photo:    u.Photo,
		Phone:    u.Phone,
		Whatsapp: u.Whatsapp,
		Address:  u.Address,
		City:     u.City,
		Bio:      u.Bio,
	}
}

// RegisterRequest is the payload for user registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login: the public profile
// plus the issued session token.
type AuthResponse struct {
	Profile
	Token string `json:"token"`
}

// UpdateProfileRequest carries the optional profile fields. A field left
// empty in the request keeps its stored value; email is immutable here.
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Photo    string `json:"photo"`
	Phone    string `json:"phone"`
	Whatsapp string `json:"whatsapp"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Bio      string `json:"bio"`
}

// ChangePasswordRequest is the payload for a password change.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	Password    string `json:"password"`
}

// ShopsResponse wraps the shop search result list.
type ShopsResponse struct {
	ShopsList []User `json:"shopsList"`
}
