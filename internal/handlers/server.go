package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/auth"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/cache"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/config"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/db"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/middleware"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/validation"
)

type Server struct {
	Cfg          *config.Config
	Cols         *db.Collections
	Val          *validation.Validator
	Log          *slog.Logger
	Cache        cache.Cache
	Villas       VillaCounter
	Reservations ReservationCounter
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}

func (s *Server) authManager() auth.Manager {
	return auth.Manager{
		Secret:     []byte(s.Cfg.JWTSecret),
		AccessTTL:  time.Duration(s.Cfg.AccessTTLMinutes) * time.Minute,
		RefreshTTL: time.Duration(s.Cfg.RefreshTTLMinutes) * time.Minute,
		Issuer:     "khanelconcept-backend",
	}
}
