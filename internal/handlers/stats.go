package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/catalog"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/reservations"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/transport"
)

// VillaCounter is the slice of the catalog store the dashboard needs.
type VillaCounter interface {
	Count(ctx context.Context) (int64, error)
}

// ReservationCounter exposes the reservation figures the dashboard reads.
type ReservationCounter interface {
	Count(ctx context.Context) (int64, error)
	RevenueSince(ctx context.Context, from time.Time) (float64, error)
}

type DashboardStats struct {
	TotalVillas       int64   `json:"total_villas"`
	TotalReservations int64   `json:"total_reservations"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
}

// DashboardStats aggregates the operator dashboard counters. Revenue counts
// non-cancelled reservations created in the current calendar month.
func (s *Server) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	totalVillas, err := s.Villas.Count(ctx)
	if err != nil {
		s.writeStatsError(log, w, err)
		return
	}

	totalReservations, err := s.Reservations.Count(ctx)
	if err != nil {
		s.writeStatsError(log, w, err)
		return
	}

	now := time.Now().In(s.Cfg.Timezone)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.Cfg.Timezone)

	revenue, err := s.Reservations.RevenueSince(ctx, monthStart)
	if err != nil {
		s.writeStatsError(log, w, err)
		return
	}

	log.Info("stats dashboard: ok",
		slog.Int64("total_villas", totalVillas),
		slog.Int64("total_reservations", totalReservations),
	)
	transport.WriteJSON(w, http.StatusOK, DashboardStats{
		TotalVillas:       totalVillas,
		TotalReservations: totalReservations,
		MonthlyRevenue:    revenue,
	})
}

func (s *Server) writeStatsError(log *slog.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, catalog.ErrStoreUnavailable) || errors.Is(err, reservations.ErrStoreUnavailable) {
		log.Error("stats dashboard: store unavailable", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusServiceUnavailable, "stats unavailable, try again", nil)
		return
	}
	log.Error("stats dashboard: database error", slog.String("error", err.Error()))
	transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
}
