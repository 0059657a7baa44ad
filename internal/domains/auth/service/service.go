package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/auth/model/dto"
	supervisorModel "frontdesk/internal/domains/supervisor/model"
	supervisorRepo "frontdesk/internal/domains/supervisor/repository"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/identifier"
	"frontdesk/shared/password"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const adminName = "Administrator"

var errInvalidCredentials = failure.Unauthorized("invalid login id or password")

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, supervisorID string) error
	// EnsureAdmin creates the configured administrator login when it does not exist yet.
	EnsureAdmin(ctx context.Context) (created bool, err error)
}

type serviceImpl struct {
	supervisors supervisorRepo.Supervisor
	cfg         *config.Config
	otel        otel.Otel
	jwtService  jwt.JWT
}

func New(supervisors supervisorRepo.Supervisor, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		supervisors: supervisors,
		cfg:         cfg,
		otel:        otel,
		jwtService:  jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(&err)

	supervisor, found, err := s.supervisors.FindByLoginID(ctx, req.LoginID)
	if err != nil {
		return res, fmt.Errorf("failed to find supervisor: %w", err)
	}

	if !found {
		log.Warn().Str("loginId", req.LoginID).Msg("login attempt with unknown login id")

		return res, errInvalidCredentials
	}

	if err = password.Verify(req.Password, supervisor.Password); err != nil {
		log.Warn().Str("loginId", req.LoginID).Msg("login attempt with wrong password")

		return res, errInvalidCredentials
	}

	if supervisor.Status == supervisorModel.StatusInactive {
		return res, failure.Forbidden("account is deactivated")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(supervisor.ID, supervisor.LoginID, supervisor.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	supervisor.LastActive = timezone.Now().Format(constant.DateFormat)

	if err = s.supervisors.Put(ctx, supervisor); err != nil {
		log.Warn().Err(err).Str("supervisorId", supervisor.ID).Msg("failed to update last active")

		return res, fmt.Errorf("failed to update last active: %w", err)
	}

	res.FromTokenPair(tokenPair)
	res.Staff.FromModel(supervisor)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(&err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, supervisorID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(&err)

	supervisor, err := s.supervisors.Get(ctx, supervisorID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get supervisor")

		return fmt.Errorf("failed to get supervisor: %w", err)
	}

	if supervisor.ID == constant.Empty {
		return failure.NotFound("supervisor not found")
	}

	if err = password.Verify(req.CurrentPassword, supervisor.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect")
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	supervisor.Password = hashed

	if err = s.supervisors.Put(ctx, supervisor); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (s *serviceImpl) EnsureAdmin(ctx context.Context) (created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnsureAdmin")
	defer scope.End()
	defer scope.TraceIfError(&err)

	admin := s.cfg.App.Admin
	if admin.LoginID == constant.Empty || admin.Password == constant.Empty {
		return false, nil
	}

	_, found, err := s.supervisors.FindByLoginID(ctx, admin.LoginID)
	if err != nil {
		return false, fmt.Errorf("failed to find supervisor: %w", err)
	}

	if found {
		return false, nil
	}

	hashed, err := password.Hash(admin.Password)
	if err != nil {
		return false, fmt.Errorf("failed to hash admin password: %w", err)
	}

	err = s.supervisors.Put(ctx, supervisorModel.Supervisor{
		ID:              identifier.SupervisorID(),
		Name:            adminName,
		LoginID:         admin.LoginID,
		Password:        hashed,
		Role:            constant.RoleSuperAdmin,
		AssignedRoomIDs: []string{},
		Status:          supervisorModel.StatusActive,
	})
	if err != nil {
		return false, fmt.Errorf("failed to create admin: %w", err)
	}

	log.Info().Str("loginId", admin.LoginID).Msg("default admin created")

	return true, nil
}
