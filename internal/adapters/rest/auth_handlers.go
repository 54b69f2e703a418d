package rest

import (
	"errors"
	"net/http"

	"listings-service/internal/contextkeys"
	"listings-service/internal/contracts"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"listings-service/internal/core/port/usecases_port"
)

type AuthHandler struct {
	loginUC usecases_port.LoginAdminUseCase
}

func NewAuthHandler(loginUC usecases_port.LoginAdminUseCase) *AuthHandler {
	return &AuthHandler{loginUC: loginUC}
}

// Login обрабатывает POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Login"})

	var req LoginRequest
	if status, err := decodeValidated(r, contracts.AdminLoginRequest, &req); err != nil {
		WriteJSONError(w, status, err.Error())
		return
	}

	admin, token, err := h.loginUC.Execute(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		logger.Error("Login failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	RespondWithJSON(w, http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		Admin: AdminProfile{
			Email:    admin.Email,
			FullName: admin.FullName,
			Role:     domain.RoleAdmin,
		},
	})
}
