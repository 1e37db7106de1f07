package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/models"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/utils"
)

// PricingRejectedError carries the error-severity pricing issues that made an
// upsert unacceptable.
type PricingRejectedError struct {
	Issues []Issue
}

func (e *PricingRejectedError) Error() string {
	kinds := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		kinds = append(kinds, string(issue.Kind))
	}
	return fmt.Sprintf("villa pricing rejected: %s", strings.Join(kinds, ", "))
}

type Service struct {
	store    Store
	location *time.Location
}

func NewService(store Store, location *time.Location) *Service {
	return &Service{
		store:    store,
		location: location,
	}
}

// List returns the active catalog in name order.
func (s *Service) List(ctx context.Context) ([]models.Villa, error) {
	return s.store.Find(ctx, SearchFilter{Status: models.VillaStatusActive})
}

func (s *Service) Get(ctx context.Context, id string) (models.Villa, error) {
	return s.store.GetByID(ctx, strings.TrimSpace(id))
}

// Search applies the conjunctive listing filters over active villas. No
// match is an empty list, never an error.
func (s *Service) Search(ctx context.Context, filter SearchFilter) ([]models.Villa, error) {
	filter.Destination = strings.TrimSpace(filter.Destination)
	filter.Category = strings.TrimSpace(filter.Category)
	if filter.Status == "" {
		filter.Status = models.VillaStatusActive
	}
	return s.store.Find(ctx, filter)
}

// Upsert normalizes and persists one villa. Error-severity pricing issues
// reject the write; the audit path stays the authority for catalog-wide
// invariants.
func (s *Service) Upsert(ctx context.Context, villa models.Villa) (models.Villa, error) {
	villa.Name = strings.TrimSpace(villa.Name)
	villa.NameNormalized = NormalizeName(villa.Name)
	if villa.ID == "" {
		villa.ID = utils.Slugify(villa.Name)
	}
	if villa.Status == "" {
		villa.Status = models.VillaStatusActive
	}

	now := time.Now().In(s.location)
	if villa.CreatedAt.IsZero() {
		villa.CreatedAt = now
	}
	villa.UpdatedAt = now

	rejected := make([]Issue, 0)
	for _, issue := range ValidatePriceFields(villa) {
		if issue.Severity == SeverityError {
			rejected = append(rejected, issue)
		}
	}
	if len(rejected) > 0 {
		return models.Villa{}, &PricingRejectedError{Issues: rejected}
	}

	if err := s.store.Upsert(ctx, villa); err != nil {
		return models.Villa{}, err
	}
	return villa, nil
}

// SetStatus flips a villa between active and inactive. Villas are never hard
// deleted so historical reservations stay resolvable.
func (s *Service) SetStatus(ctx context.Context, id, status string) (models.Villa, error) {
	villa, err := s.store.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return models.Villa{}, err
	}
	villa.Status = status
	villa.UpdatedAt = time.Now().In(s.location)
	if err := s.store.Upsert(ctx, villa); err != nil {
		return models.Villa{}, err
	}
	return villa, nil
}

// Reseed replaces the whole catalog atomically. Records are normalized but
// not pricing-gated: a correction batch may intentionally install data the
// audit will then judge.
func (s *Service) Reseed(ctx context.Context, villas []models.Villa) error {
	now := time.Now().In(s.location)
	prepared := make([]models.Villa, 0, len(villas))
	for _, villa := range villas {
		villa.Name = strings.TrimSpace(villa.Name)
		villa.NameNormalized = NormalizeName(villa.Name)
		if villa.ID == "" {
			villa.ID = utils.Slugify(villa.Name)
		}
		if villa.Status == "" {
			villa.Status = models.VillaStatusActive
		}
		if villa.CreatedAt.IsZero() {
			villa.CreatedAt = now
		}
		villa.UpdatedAt = now
		prepared = append(prepared, villa)
	}
	return s.store.ReplaceAll(ctx, prepared)
}
