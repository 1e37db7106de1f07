package reservations

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/catalog"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/models"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/validation"
)

type unavailableVillas struct{}

func (unavailableVillas) Get(ctx context.Context, id string) (models.Villa, error) {
	return models.Villa{}, fmt.Errorf("%w: %v", catalog.ErrStoreUnavailable, context.DeadlineExceeded)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateMapsCatalogOutage(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo, unavailableVillas{}, time.UTC, false)

	_, err := service.Create(context.Background(), validRequest("villa-f3-sur-petit-macabou"))
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if len(repo.reservations) != 0 {
		t.Fatalf("expected no reservation persisted, got %d", len(repo.reservations))
	}
}

func TestCreateHandlerCatalogOutageReturns503(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo, unavailableVillas{}, time.UTC, false)
	handler := NewHandler(service, validation.New(), discardLogger(), nil)

	body, err := json.Marshal(validRequest("villa-f3-sur-petit-macabou"))
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d body=%s", rec.Code, rec.Body.String())
	}
	if len(repo.reservations) != 0 {
		t.Fatalf("expected no reservation persisted, got %d", len(repo.reservations))
	}
}
