package dto

import (
	"frontdesk/infras/jwt"
	supervisorModel "frontdesk/internal/domains/supervisor/model"
)

type LoginRequest struct {
	LoginID  string `json:"loginId"  validate:"required"`
	Password string `json:"password" validate:"required"`
}

// StaffResponse is a supervisor profile without credentials.
type StaffResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	LoginID         string   `json:"loginId"`
	Role            string   `json:"role"`
	AssignedRoomIDs []string `json:"assignedRoomIds"`
	Status          string   `json:"status"`
	LastActive      string   `json:"lastActive,omitempty"`
}

func (r *StaffResponse) FromModel(m supervisorModel.Supervisor) {
	r.ID = m.ID
	r.Name = m.Name
	r.LoginID = m.LoginID
	r.Role = m.Role
	r.AssignedRoomIDs = m.AssignedRoomIDs
	r.Status = m.Status
	r.LastActive = m.LastActive

	if r.AssignedRoomIDs == nil {
		r.AssignedRoomIDs = []string{}
	}
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	Staff        StaffResponse `json:"staff"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}
