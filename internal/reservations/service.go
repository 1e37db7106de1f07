package reservations

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/catalog"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/models"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/stay"
)

var (
	ErrUnknownVilla     = errors.New("unknown villa")
	ErrInvalidDateRange = errors.New("checkout date must fall after the checkin date")
	ErrDateConflict     = errors.New("villa already reserved on these dates")
)

// VillaFinder is the slice of the catalog the booking path needs.
type VillaFinder interface {
	Get(ctx context.Context, id string) (models.Villa, error)
}

type Service struct {
	repo     Repository
	villas   VillaFinder
	location *time.Location

	// Overlap rejection is opt-in: the booking desk resolves date conflicts
	// manually, and double submissions are rare enough that they handle them.
	conflictCheck bool
}

func NewService(repo Repository, villas VillaFinder, location *time.Location, conflictCheck bool) *Service {
	return &Service{
		repo:          repo,
		villas:        villas,
		location:      location,
		conflictCheck: conflictCheck,
	}
}

// ComputeQuote derives nights, total price and soft warnings for a stay. It is
// pure so repeated calls with the same villa and dates always price identically.
func ComputeQuote(villa models.Villa, checkinDate, checkoutDate string, guestsCount int) (Quote, error) {
	nights, err := stay.Nights(checkinDate, checkoutDate)
	if err != nil {
		return Quote{}, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}
	if nights <= 0 {
		return Quote{}, ErrInvalidDateRange
	}

	base := villa.Price
	details := villa.PricingDetails
	if details != nil && details.BasePrice > 0 {
		base = details.BasePrice
	}

	total := base * float64(nights)
	switch {
	case nights >= 7 && details != nil && details.Week > 0:
		// Full weeks at the week rate, leftover nights at the base rate.
		weeks := nights / 7
		remainder := nights % 7
		total = details.Week*float64(weeks) + base*float64(remainder)
	case nights >= 2 && nights <= 3 && details != nil && details.Weekend > 0:
		spans, err := stay.SpansWeekend(checkinDate, nights)
		if err != nil {
			return Quote{}, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
		}
		if spans {
			total = details.Weekend
		}
	}

	quote := Quote{Nights: nights, TotalPrice: total}

	if villa.Guests > 0 && guestsCount > villa.Guests {
		// Party rates are absolute totals for a guest tier, replacing the
		// nightly computation outright.
		if details != nil && len(details.PartyRates) > 0 {
			if rate, ok := partyRateFor(details.PartyRates, guestsCount); ok {
				quote.TotalPrice = rate
			}
		}
		quote.Warnings = append(quote.Warnings, fmt.Sprintf(
			"guests_count %d exceeds villa capacity %d", guestsCount, villa.Guests))
	}

	return quote, nil
}

// partyRateFor picks the smallest tier that covers the guest count.
func partyRateFor(rates map[string]float64, guestsCount int) (float64, bool) {
	type tier struct {
		guests int
		rate   float64
	}
	tiers := make([]tier, 0, len(rates))
	for key, rate := range rates {
		guests, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			continue
		}
		tiers = append(tiers, tier{guests: guests, rate: rate})
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].guests < tiers[j].guests })

	for _, t := range tiers {
		if guestsCount <= t.guests {
			return t.rate, true
		}
	}
	return 0, false
}

// Create prices and persists one reservation. The villa lookup, pricing and
// insert are sequential; the insert itself is a single document write, so a
// reservation either lands fully with an id or not at all.
func (s *Service) Create(ctx context.Context, req CreateRequest) (models.Reservation, error) {
	villa, err := s.villas.Get(ctx, strings.TrimSpace(req.VillaID))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return models.Reservation{}, ErrUnknownVilla
		}
		if errors.Is(err, catalog.ErrStoreUnavailable) {
			return models.Reservation{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return models.Reservation{}, err
	}

	quote, err := ComputeQuote(villa, req.CheckinDate, req.CheckoutDate, req.GuestsCount)
	if err != nil {
		return models.Reservation{}, err
	}

	if s.conflictCheck {
		rng, err := stay.NewRange(req.CheckinDate, req.CheckoutDate)
		if err != nil {
			return models.Reservation{}, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
		}
		overlapping, err := s.repo.FindOverlapping(ctx, villa.ID, rng)
		if err != nil {
			return models.Reservation{}, err
		}
		if len(overlapping) > 0 {
			return models.Reservation{}, ErrDateConflict
		}
	}

	reservation := models.Reservation{
		VillaID:       villa.ID,
		VillaName:     villa.Name,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		CheckinDate:   req.CheckinDate,
		CheckoutDate:  req.CheckoutDate,
		GuestsCount:   req.GuestsCount,
		Message:       strings.TrimSpace(req.Message),
		TotalPrice:    quote.TotalPrice,
		Status:        models.ReservationStatusPending,
		Warnings:      quote.Warnings,
		CreatedAt:     time.Now().In(s.location),
	}

	return s.repo.Insert(ctx, reservation)
}

func (s *Service) Get(ctx context.Context, id string) (models.Reservation, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]models.Reservation, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) SetStatus(ctx context.Context, id, status string) error {
	return s.repo.UpdateStatus(ctx, strings.TrimSpace(id), status)
}
