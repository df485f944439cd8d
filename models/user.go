package models

import (
	"time"
)

// Points pricing. One point is worth one Kenyan shilling for display purposes;
// no real payment network is wired in.
const (
	PointsPerView  = 20
	PointsPerSave  = 10 // advertised in the terms; the save path does not debit
	MinTopUpPoints = 10
	SignupPoints   = 300
)

type User struct {
	ID        string    `json:"id" bson:"_id"`
	Email     string    `json:"email" bson:"email"`
	Password  string    `json:"password,omitempty" bson:"password,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Points    int       `json:"points" bson:"points"`
	IsAdmin   bool      `json:"isAdmin" bson:"isAdmin"`
	Provider  string    `json:"provider" bson:"provider"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ApplyDebit is the ledger's debit rule: the balance after a covered debit,
// or the balance unchanged with ok false when it cannot cover the amount.
// The store-side guarded update enforces the same rule atomically.
func ApplyDebit(balance, amount int) (newBalance int, ok bool) {
	if balance < amount {
		return balance, false
	}
	return balance - amount, true
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type GoogleLoginRequest struct {
	Code        string `json:"code"`
	RedirectURI string `json:"redirectUri"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateUserRequest struct {
	Name string `json:"name"`
}

type TopUpRequest struct {
	Phone  string `json:"phone"`
	Points int    `json:"points"`
}

type TopUpResponse struct {
	TransactionCode string `json:"transactionCode"`
	PointsAdded     int    `json:"pointsAdded"`
	NewBalance      int    `json:"newBalance"`
}

// TopUp is the persisted record of a simulated M-Pesa purchase. Revenue in
// the admin statistics is summed from these.
type TopUp struct {
	ID              string    `bson:"_id" json:"id"`
	UserID          string    `bson:"userId" json:"userId"`
	Phone           string    `bson:"phone" json:"phone"`
	Points          int       `bson:"points" json:"points"`
	TransactionCode string    `bson:"transactionCode" json:"transactionCode"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
