package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/catalog"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/config"
)

type fakeVillaCounter struct {
	count int64
	err   error
}

func (f fakeVillaCounter) Count(ctx context.Context) (int64, error) {
	return f.count, f.err
}

type fakeReservationCounter struct {
	count   int64
	revenue float64
}

func (f fakeReservationCounter) Count(ctx context.Context) (int64, error) {
	return f.count, nil
}

func (f fakeReservationCounter) RevenueSince(ctx context.Context, from time.Time) (float64, error) {
	return f.revenue, nil
}

func newStatsServer(villas VillaCounter, reservations ReservationCounter) *Server {
	return &Server{
		Cfg:          &config.Config{Timezone: time.UTC},
		Log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		Villas:       villas,
		Reservations: reservations,
	}
}

func TestGetDashboardStats(t *testing.T) {
	server := newStatsServer(
		fakeVillaCounter{count: 21},
		fakeReservationCounter{count: 4, revenue: 3200},
	)

	rec := httptest.NewRecorder()
	server.GetDashboardStats(rec, httptest.NewRequest(http.MethodGet, "/api/stats/dashboard", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var stats DashboardStats
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if stats.TotalVillas != 21 {
		t.Fatalf("expected 21 villas, got %d", stats.TotalVillas)
	}
	if stats.TotalReservations != 4 {
		t.Fatalf("expected 4 reservations, got %d", stats.TotalReservations)
	}
	if stats.MonthlyRevenue != 3200 {
		t.Fatalf("expected revenue 3200, got %.2f", stats.MonthlyRevenue)
	}
}

func TestGetDashboardStatsStoreOutageReturns503(t *testing.T) {
	server := newStatsServer(
		fakeVillaCounter{err: fmt.Errorf("%w: %v", catalog.ErrStoreUnavailable, context.DeadlineExceeded)},
		fakeReservationCounter{},
	)

	rec := httptest.NewRecorder()
	server.GetDashboardStats(rec, httptest.NewRequest(http.MethodGet, "/api/stats/dashboard", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d body=%s", rec.Code, rec.Body.String())
	}
}
