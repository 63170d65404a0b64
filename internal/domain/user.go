package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Constantes para identificar os roles de usuário
const (
	RoleAdmin   = 1
	RoleManager = 2
	RoleAnalyst = 3
	RoleUser    = 4
)

// RoleNames mapeia o ID do role para o nome usado na API
var RoleNames = map[int]string{
	RoleAdmin:   "admin",
	RoleManager: "manager",
	RoleAnalyst: "analyst",
	RoleUser:    "user",
}

// RoleIDs mapeia o nome do role para o ID interno
var RoleIDs = map[string]int{
	"admin":   RoleAdmin,
	"manager": RoleManager,
	"analyst": RoleAnalyst,
	"user":    RoleUser,
}

type User struct {
	ID              int        `json:"id"`
	Email           string     `json:"email"`
	FullName        string     `json:"full_name"`
	PasswordHash    string     `json:"-"`
	Active          bool       `json:"active"`
	RoleID          int        `json:"role_id"`
	Role            string     `json:"role"`
	MetaAccessToken *string    `json:"-"`
	MetaAccountID   *string    `json:"meta_account_id,omitempty"`
	Deleted         bool       `json:"-"`
	DeletedAt       *time.Time `json:"-"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID              int     `json:"id"`
	Email           *string `json:"email"`
	FullName        *string `json:"full_name"`
	Active          *bool   `json:"active"`
	RoleID          *int    `json:"role_id"`
	MetaAccessToken *string `json:"meta_access_token"`
	MetaAccountID   *string `json:"meta_account_id"`
	Deleted         *bool   `json:"deleted"`
}

type Claims struct {
	UserID        int
	UserEmail     string
	UserFullName  string
	UserActive    bool
	UserRoleID    int
	HasMetaToken  bool
	MetaAccountID *string
	jwt.RegisteredClaims
}
