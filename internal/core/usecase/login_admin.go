package usecase

import (
	"context"
	"fmt"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"time"
)

type LoginAdminUseCase struct {
	admins         port.AdminDirectoryPort
	tokenSvc       port.TokenServicePort
	accessTokenTTL time.Duration
}

func NewLoginAdminUseCase(admins port.AdminDirectoryPort, tokenSvc port.TokenServicePort, accessTokenTTL time.Duration) *LoginAdminUseCase {
	return &LoginAdminUseCase{
		admins:         admins,
		tokenSvc:       tokenSvc,
		accessTokenTTL: accessTokenTTL,
	}
}

func (uc *LoginAdminUseCase) Execute(ctx context.Context, email, password string) (*domain.AdminUser, string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "LoginAdmin",
		"email":    email,
	})
	ucLogger.Info("Use case started: attempting to login admin", nil)

	admin, err := uc.admins.FindByEmail(ctx, email)
	if err != nil {
		ucLogger.Error("Admin directory failed to find admin by email", err, nil)
		return nil, "", fmt.Errorf("internal server error: %w", err)
	}
	// Не раскрываем, что именно не так: email или пароль.
	if admin == nil || !admin.CheckPassword(password) {
		ucLogger.Warn("Login failed: invalid credentials", nil)
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := uc.tokenSvc.GenerateToken(ctx, admin, uc.accessTokenTTL)
	if err != nil {
		ucLogger.Error("Failed to generate token after successful login", err, nil)
		return nil, "", err
	}

	ucLogger.Info("Use case finished: admin logged in successfully", nil)
	return admin, token, nil
}
