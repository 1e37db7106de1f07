package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/auth"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/models"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/transport"
)

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponse struct {
	Status string `json:"status"`
}

func (s *Server) AdminLogin(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req AdminLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("admin login: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("admin login: validation error")
		details := validationDetails(s.Val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	if s.Cfg.JWTSecret == "" {
		log.Warn("admin login: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
		return
	}

	if !s.checkAdminCredentials(r.Context(), req.Username, req.Password) {
		log.Warn("admin login: invalid credentials", slog.String("username", req.Username))
		transport.WriteError(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	if err := s.issueAdminSession(w); err != nil {
		log.Error("admin login: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}

	log.Info("admin login: ok", slog.String("username", req.Username))
	transport.WriteJSON(w, http.StatusOK, AdminLoginResponse{Status: "ok"})
}

// checkAdminCredentials tries the users collection first and falls back to the
// bootstrap credentials from the environment when no user record matches.
func (s *Server) checkAdminCredentials(ctx context.Context, username, password string) bool {
	if s.Cols != nil && s.Cols.Users != nil {
		lookupCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		var user models.User
		err := s.Cols.Users.FindOne(lookupCtx, bson.M{
			"username": username,
			"role":     models.UserRoleAdmin,
		}).Decode(&user)
		if err == nil {
			return auth.ComparePassword(user.PasswordHash, password) == nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return false
		}
	}

	if s.Cfg.AdminPassword == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.Cfg.AdminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.Cfg.AdminPassword)) == 1
	return userOK && passOK
}

func (s *Server) AdminRefresh(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	if s.Cfg.JWTSecret == "" {
		log.Warn("admin refresh: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
		return
	}

	refreshCookie, err := r.Cookie("khanel_refresh")
	if err != nil || refreshCookie.Value == "" {
		log.Warn("admin refresh: missing refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}

	manager := s.authManager()
	claims, err := manager.Parse(refreshCookie.Value)
	if err != nil || claims.Role != models.UserRoleAdmin {
		log.Warn("admin refresh: invalid refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}

	if err := s.issueAdminSession(w); err != nil {
		log.Error("admin refresh: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}

	log.Info("admin refresh: ok")
	transport.WriteJSON(w, http.StatusOK, AdminLoginResponse{Status: "ok"})
}

func (s *Server) AdminLogout(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	clearAuthCookies(w, s.Cfg.CookieSecure)
	log.Info("admin logout: ok")
	transport.WriteJSON(w, http.StatusOK, AdminLoginResponse{Status: "ok"})
}

func (s *Server) issueAdminSession(w http.ResponseWriter) error {
	manager := s.authManager()
	accessToken, err := manager.NewAccessToken(models.UserRoleAdmin)
	if err != nil {
		return err
	}
	refreshToken, err := manager.NewRefreshToken(models.UserRoleAdmin)
	if err != nil {
		return err
	}
	setAuthCookies(w, accessToken, refreshToken, manager.AccessTTL, manager.RefreshTTL, s.Cfg.CookieSecure)
	return nil
}

func setAuthCookies(w http.ResponseWriter, access, refresh string, accessTTL, refreshTTL time.Duration, secure bool) {
	accessCookie := &http.Cookie{
		Name:     "khanel_access",
		Value:    access,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(accessTTL.Seconds()),
	}
	refreshCookie := &http.Cookie{
		Name:     "khanel_refresh",
		Value:    refresh,
		Path:     "/api/admin",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(refreshTTL.Seconds()),
	}
	http.SetCookie(w, accessCookie)
	http.SetCookie(w, refreshCookie)
}

func clearAuthCookies(w http.ResponseWriter, secure bool) {
	expire := time.Now().Add(-1 * time.Hour)
	accessCookie := &http.Cookie{
		Name:     "khanel_access",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expire,
		MaxAge:   -1,
	}
	refreshCookie := &http.Cookie{
		Name:     "khanel_refresh",
		Value:    "",
		Path:     "/api/admin",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expire,
		MaxAge:   -1,
	}
	http.SetCookie(w, accessCookie)
	http.SetCookie(w, refreshCookie)
}
