package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/catalog"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/models"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/stay"
)

type fakeRepo struct {
	reservations []models.Reservation
}

func (f *fakeRepo) Insert(ctx context.Context, reservation models.Reservation) (models.Reservation, error) {
	if reservation.ID == "" {
		reservation.ID = "res-1"
	}
	f.reservations = append(f.reservations, reservation)
	return reservation, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (models.Reservation, error) {
	for _, reservation := range f.reservations {
		if reservation.ID == id {
			return reservation, nil
		}
	}
	return models.Reservation{}, ErrNotFound
}

func (f *fakeRepo) List(ctx context.Context, limit, offset int) ([]models.Reservation, error) {
	return f.reservations, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id, status string) error {
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			f.reservations[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepo) FindOverlapping(ctx context.Context, villaID string, rng stay.Range) ([]models.Reservation, error) {
	out := make([]models.Reservation, 0)
	for _, reservation := range f.reservations {
		if reservation.VillaID != villaID || reservation.Status == models.ReservationStatusCancelled {
			continue
		}
		existing, err := stay.NewRange(reservation.CheckinDate, reservation.CheckoutDate)
		if err != nil {
			continue
		}
		if stay.Overlaps(existing, rng) {
			out = append(out, reservation)
		}
	}
	return out, nil
}

type fakeVillas struct {
	villas map[string]models.Villa
}

func (f *fakeVillas) Get(ctx context.Context, id string) (models.Villa, error) {
	villa, ok := f.villas[id]
	if !ok {
		return models.Villa{}, catalog.ErrNotFound
	}
	return villa, nil
}

func villaF3() models.Villa {
	return models.Villa{
		ID:       "villa-f3-sur-petit-macabou",
		Name:     "Villa F3 sur Petit Macabou",
		Location: "Petit Macabou au Vauclin",
		Category: models.CategorySejour,
		Price:    850,
		PricingDetails: &models.PricingDetails{
			BasePrice: 850,
			Weekend:   900,
			Week:      1550,
		},
		Guests: 6,
		Status: models.VillaStatusActive,
	}
}

func villaPiscine() models.Villa {
	return models.Villa{
		ID:       "espace-piscine-journee-bungalow",
		Name:     "Espace Piscine Journée Bungalow",
		Location: "Petit Macabou au Vauclin",
		Category: models.CategoryPiscine,
		Price:    350,
		PricingDetails: &models.PricingDetails{
			BasePrice:  350,
			PartyRates: map[string]float64{"25": 350, "50": 600},
		},
		Guests: 9,
		Status: models.VillaStatusActive,
	}
}

func newTestService(repo *fakeRepo, conflictCheck bool, villas ...models.Villa) *Service {
	store := &fakeVillas{villas: make(map[string]models.Villa)}
	for _, villa := range villas {
		store.villas[villa.ID] = villa
	}
	return NewService(repo, store, time.UTC, conflictCheck)
}

func validRequest(villaID string) CreateRequest {
	return CreateRequest{
		VillaID:       villaID,
		CustomerName:  "Marie Dubois",
		CustomerEmail: "marie.dubois@example.com",
		CustomerPhone: "+596 696 12 34 56",
		CheckinDate:   "2025-08-15",
		CheckoutDate:  "2025-08-22",
		GuestsCount:   4,
	}
}

func TestComputeQuoteWeekRate(t *testing.T) {
	quote, err := ComputeQuote(villaF3(), "2025-08-15", "2025-08-22", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Nights != 7 {
		t.Fatalf("expected 7 nights, got %d", quote.Nights)
	}
	if quote.TotalPrice != 1550 {
		t.Fatalf("expected week rate 1550, got %.2f", quote.TotalPrice)
	}
}

func TestComputeQuoteWeekRateWithRemainder(t *testing.T) {
	quote, err := ComputeQuote(villaF3(), "2025-08-15", "2025-08-25", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Nights != 10 {
		t.Fatalf("expected 10 nights, got %d", quote.Nights)
	}
	want := 1550 + 3*850.0
	if quote.TotalPrice != want {
		t.Fatalf("expected %.2f, got %.2f", want, quote.TotalPrice)
	}
}

func TestComputeQuoteWeekendRate(t *testing.T) {
	// 2025-08-15 is a Friday.
	quote, err := ComputeQuote(villaF3(), "2025-08-15", "2025-08-17", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.TotalPrice != 900 {
		t.Fatalf("expected weekend rate 900, got %.2f", quote.TotalPrice)
	}
}

func TestComputeQuoteWeekdayShortStay(t *testing.T) {
	// 2025-08-18 is a Monday; two nights never touch a weekend.
	quote, err := ComputeQuote(villaF3(), "2025-08-18", "2025-08-20", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.TotalPrice != 2*850 {
		t.Fatalf("expected base rate per night, got %.2f", quote.TotalPrice)
	}
}

func TestComputeQuotePartyRateReplaces(t *testing.T) {
	quote, err := ComputeQuote(villaPiscine(), "2025-08-16", "2025-08-17", 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.TotalPrice != 600 {
		t.Fatalf("expected party tier total 600, got %.2f", quote.TotalPrice)
	}
	if len(quote.Warnings) != 1 {
		t.Fatalf("expected a capacity warning, got %v", quote.Warnings)
	}
}

func TestComputeQuotePartyRateSmallestCoveringTier(t *testing.T) {
	quote, err := ComputeQuote(villaPiscine(), "2025-08-16", "2025-08-17", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.TotalPrice != 350 {
		t.Fatalf("expected tier 25 total 350, got %.2f", quote.TotalPrice)
	}
}

func TestComputeQuoteDeterminism(t *testing.T) {
	first, err := ComputeQuote(villaF3(), "2025-08-15", "2025-08-22", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComputeQuote(villaF3(), "2025-08-15", "2025-08-22", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.TotalPrice != second.TotalPrice || first.Nights != second.Nights {
		t.Fatalf("expected identical quotes, got %+v and %+v", first, second)
	}
}

func TestCreateRejectsInvertedRange(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo, false, villaF3())

	req := validRequest("villa-f3-sur-petit-macabou")
	req.CheckinDate = "2025-08-20"
	req.CheckoutDate = "2025-08-15"

	_, err := service.Create(context.Background(), req)
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	if len(repo.reservations) != 0 {
		t.Fatalf("expected no reservation persisted, got %d", len(repo.reservations))
	}
}

func TestCreateRejectsUnknownVilla(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo, false, villaF3())

	_, err := service.Create(context.Background(), validRequest("does-not-exist"))
	if !errors.Is(err, ErrUnknownVilla) {
		t.Fatalf("expected ErrUnknownVilla, got %v", err)
	}
	if len(repo.reservations) != 0 {
		t.Fatalf("expected no reservation persisted, got %d", len(repo.reservations))
	}
}

func TestCreatePersistsReservation(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo, false, villaF3())

	reservation, err := service.Create(context.Background(), validRequest("villa-f3-sur-petit-macabou"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reservation.ID == "" {
		t.Fatalf("expected a server-assigned id")
	}
	if reservation.Status != models.ReservationStatusPending {
		t.Fatalf("expected pending status, got %q", reservation.Status)
	}
	if reservation.TotalPrice != 1550 {
		t.Fatalf("expected week rate 1550, got %.2f", reservation.TotalPrice)
	}
	if reservation.VillaName != "Villa F3 sur Petit Macabou" {
		t.Fatalf("expected villa name snapshot, got %q", reservation.VillaName)
	}
	if len(repo.reservations) != 1 {
		t.Fatalf("expected 1 persisted reservation, got %d", len(repo.reservations))
	}
}

func TestCreateCapacityWarningDoesNotBlock(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo, false, villaF3())

	req := validRequest("villa-f3-sur-petit-macabou")
	req.GuestsCount = 8

	reservation, err := service.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reservation.Warnings) != 1 {
		t.Fatalf("expected a capacity warning, got %v", reservation.Warnings)
	}
}

func TestCreateConflictCheckOptIn(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo, true, villaF3())

	if _, err := service.Create(context.Background(), validRequest("villa-f3-sur-petit-macabou")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := validRequest("villa-f3-sur-petit-macabou")
	req.CheckinDate = "2025-08-20"
	req.CheckoutDate = "2025-08-24"
	if _, err := service.Create(context.Background(), req); !errors.Is(err, ErrDateConflict) {
		t.Fatalf("expected ErrDateConflict, got %v", err)
	}

	// Back-to-back stays share no night and must pass.
	req.CheckinDate = "2025-08-22"
	req.CheckoutDate = "2025-08-24"
	if _, err := service.Create(context.Background(), req); err != nil {
		t.Fatalf("unexpected error for back-to-back stay: %v", err)
	}
}

func TestCreateConflictCheckDisabledAllowsOverlap(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo, false, villaF3())

	if _, err := service.Create(context.Background(), validRequest("villa-f3-sur-petit-macabou")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.Create(context.Background(), validRequest("villa-f3-sur-petit-macabou")); err != nil {
		t.Fatalf("expected overlap to be accepted when the check is off, got %v", err)
	}
	if len(repo.reservations) != 2 {
		t.Fatalf("expected both reservations persisted, got %d", len(repo.reservations))
	}
}
