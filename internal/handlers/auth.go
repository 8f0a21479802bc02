package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/topup-storefront/internal/domain"
	"go.uber.org/zap"
)

// AuthHandler регистрация и вход. Токен отдается в заголовке Authorization,
// в теле ответа роль, чтобы витрина знала, показывать ли раздел администратора.
type AuthHandler struct {
	authService domain.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService domain.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return
	}

	session, err := h.authService.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to register", zap.String("login", req.Login))
		return
	}

	h.writeSession(w, session)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return
	}

	session, err := h.authService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		writeServiceError(w, h.logger, err, "failed to login", zap.String("login", req.Login))
		return
	}

	if session.Role == domain.RoleAdmin {
		h.logger.Info("admin logged in", zap.Int64("user_id", session.UserID))
	}
	h.writeSession(w, session)
}

func (h *AuthHandler) writeSession(w http.ResponseWriter, session *domain.Session) {
	w.Header().Set("Authorization", "Bearer "+session.Token)
	if err := writeJSON(w, http.StatusOK, session); err != nil {
		h.logger.Error("failed to encode session", zap.Error(err))
	}
}
