package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	s := NewAuthService(testConfig())

	_, err := s.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	resp, err := s.Login("admin", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.CoordinatorID)

	claims, err := s.ValidateCoordinatorToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.CoordinatorID, claims.CoordinatorID)
}

func TestAuthService_TokensAreNotInterchangeable(t *testing.T) {
	s := NewAuthService(testConfig())

	team, err := s.GenerateTeamToken("ABC123", "t_1", "Alpha")
	require.NoError(t, err)
	_, err = s.ValidateCoordinatorToken(team)
	assert.ErrorIs(t, err, ErrInvalidToken)

	login, err := s.Login("admin", "pw")
	require.NoError(t, err)
	_, err = s.ValidateTeamToken(login.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_RejectsForeignSecretAndExpiry(t *testing.T) {
	cfg := testConfig()
	s := NewAuthService(cfg)

	cfg.JWTSecret = "other"
	other := NewAuthService(cfg)
	token, err := other.GenerateTeamToken("ABC123", "t_1", "Alpha")
	require.NoError(t, err)
	_, err = s.ValidateTeamToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	cfg = testConfig()
	cfg.TeamTokenTTL = -time.Minute
	expired, err := NewAuthService(cfg).GenerateTeamToken("ABC123", "t_1", "Alpha")
	require.NoError(t, err)
	_, err = s.ValidateTeamToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
