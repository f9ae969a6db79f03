package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"sarrisk/internal/config"
	"sarrisk/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService handles coordinator and team authentication
type AuthService struct {
	username string
	password string
	secret   []byte
	teamTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		username: cfg.CoordinatorUsername,
		password: cfg.CoordinatorPassword,
		secret:   []byte(cfg.JWTSecret),
		teamTTL:  cfg.TeamTokenTTL,
	}
}

// Login validates coordinator credentials and returns a token
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	if username != s.username || password != s.password {
		return nil, ErrInvalidCredentials
	}

	coordinatorID := "c_" + uuid.New().String()[:8]
	claims := &model.CoordinatorClaims{
		CoordinatorID: coordinatorID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}
	return &model.LoginResponse{
		Token:         token,
		CoordinatorID: coordinatorID,
	}, nil
}

// ValidateCoordinatorToken validates a coordinator JWT and returns claims
func (s *AuthService) ValidateCoordinatorToken(tokenString string) (*model.CoordinatorClaims, error) {
	claims := &model.CoordinatorClaims{}
	if err := s.parse(tokenString, claims); err != nil {
		return nil, err
	}
	if claims.CoordinatorID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GenerateTeamToken creates a mission-scoped token for a team
func (s *AuthService) GenerateTeamToken(missionCode, teamID, teamName string) (string, error) {
	now := time.Now()
	claims := &model.TeamClaims{
		MissionCode: missionCode,
		TeamID:      teamID,
		TeamName:    teamName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.teamTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateTeamToken validates a team JWT and returns claims
func (s *AuthService) ValidateTeamToken(tokenString string) (*model.TeamClaims, error) {
	claims := &model.TeamClaims{}
	if err := s.parse(tokenString, claims); err != nil {
		return nil, err
	}
	if claims.TeamID == "" || claims.MissionCode == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) parse(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
