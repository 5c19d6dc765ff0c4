package models

import "time"

// Auth providers
const (
	ProviderPassword = "password"
	ProviderGoogle   = "google"
)

// User is an account owning customers, interactions and schedules
type User struct {
	ID              string       `json:"id"`
	Email           string       `json:"email"`
	Name            string       `json:"name"`
	PasswordHash    string       `json:"-"`
	Provider        string       `json:"provider"`
	ProviderSubject string       `json:"-"`
	Settings        UserSettings `json:"settings"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// UserSettings are the client preferences persisted server side.
// Loaded on login, written whenever the client changes them.
type UserSettings struct {
	Language string `json:"language,omitempty"`
	Theme    string `json:"theme,omitempty"`
}

// UserInfo represents user information in responses
type UserInfo struct {
	ID        string       `json:"id"`
	Email     string       `json:"email"`
	Name      string       `json:"name"`
	Provider  string       `json:"provider"`
	Settings  UserSettings `json:"settings"`
	CreatedAt time.Time    `json:"created_at"`
}

// Info converts a user into its response shape
func (u *User) Info() *UserInfo {
	return &UserInfo{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Provider:  u.Provider,
		Settings:  u.Settings,
		CreatedAt: u.CreatedAt,
	}
}

// UpdateProfileRequest represents a request to update user profile
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Language *string `json:"language,omitempty" validate:"omitempty,oneof=zh en ja ko"`
	Theme    *string `json:"theme,omitempty" validate:"omitempty,oneof=light dark system"`
}
