package model

import "github.com/golang-jwt/jwt/v5"

// CoordinatorClaims are JWT claims for coordinator authentication
type CoordinatorClaims struct {
	CoordinatorID string `json:"coordinatorId"`
	jwt.RegisteredClaims
}

// TeamClaims are JWT claims for mission-scoped team tokens
type TeamClaims struct {
	MissionCode string `json:"missionCode"`
	TeamID      string `json:"teamId"`
	TeamName    string `json:"teamName"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for coordinator login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token         string `json:"token"`
	CoordinatorID string `json:"coordinatorId"`
}
