package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/infras/jwt"
	"frontdesk/internal/domains/auth/model/dto"
	supervisorModel "frontdesk/internal/domains/supervisor/model"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, int64(900), response.ExpiresIn)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestStaffResponse_FromModel(t *testing.T) {
	var response dto.StaffResponse
	response.FromModel(supervisorModel.Supervisor{
		ID:       "SUP-1",
		Name:     "Meena",
		LoginID:  "meena",
		Password: "$2a$10$hash",
		Role:     "RECEPTIONIST",
		Status:   supervisorModel.StatusActive,
	})

	assert.Equal(t, "meena", response.LoginID)
	assert.Equal(t, "RECEPTIONIST", response.Role)
	assert.NotNil(t, response.AssignedRoomIDs)
}
