package entity

import (
	"time"
)

type UserType string

const (
	UserTypeTenant UserType = "tenant"
	UserTypeOwner  UserType = "owner"
)

func (t UserType) Valid() bool {
	switch t {
	case UserTypeTenant, UserTypeOwner:
		return true
	}
	return false
}

type User struct {
	ID         string   `json:"id" firestore:"id"`
	FirstName  string   `json:"first_name" firestore:"firstName"`
	LastName   string   `json:"last_name" firestore:"lastName"`
	Email      string   `json:"email" firestore:"email"`
	GoogleID   string   `json:"-" firestore:"googleId,omitempty"`
	UserType   UserType `json:"user_type" firestore:"userType"`
	IsVerified bool     `json:"is_verified" firestore:"isVerified"`

	// One-time code challenge. Never serialized to clients.
	OTP        string    `json:"-" firestore:"otp,omitempty"`
	OTPExpires time.Time `json:"-" firestore:"otpExpires,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// UserSummary is the projection embedded in populated rental, conversation
// and message responses.
type UserSummary struct {
	ID        string `json:"id" firestore:"id"`
	FirstName string `json:"first_name" firestore:"firstName"`
	LastName  string `json:"last_name" firestore:"lastName"`
	Email     string `json:"email,omitempty" firestore:"email,omitempty"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
