package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/models"
)

// memStore keeps villas in insertion order, matching the interface contract
// closely enough for service and audit tests.
type memStore struct {
	villas []models.Villa
}

func (m *memStore) GetAll(ctx context.Context) ([]models.Villa, error) {
	out := make([]models.Villa, len(m.villas))
	copy(out, m.villas)
	return out, nil
}

func (m *memStore) GetByID(ctx context.Context, id string) (models.Villa, error) {
	for _, villa := range m.villas {
		if villa.ID == id {
			return villa, nil
		}
	}
	return models.Villa{}, ErrNotFound
}

func (m *memStore) Find(ctx context.Context, filter SearchFilter) ([]models.Villa, error) {
	out := make([]models.Villa, 0)
	for _, villa := range m.villas {
		if filter.Destination != "" && !strings.Contains(strings.ToLower(villa.Location), strings.ToLower(filter.Destination)) {
			continue
		}
		if filter.MinGuests > 0 && villa.Guests < filter.MinGuests {
			continue
		}
		if filter.Category != "" && villa.Category != filter.Category {
			continue
		}
		if filter.Status != "" && villa.Status != filter.Status {
			continue
		}
		out = append(out, villa)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memStore) Upsert(ctx context.Context, villa models.Villa) error {
	for i, existing := range m.villas {
		if existing.ID == villa.ID {
			if existing.NameNormalized != villa.NameNormalized {
				return ErrConflict
			}
			m.villas[i] = villa
			return nil
		}
	}
	for _, existing := range m.villas {
		if existing.NameNormalized == villa.NameNormalized {
			return ErrConflict
		}
	}
	m.villas = append(m.villas, villa)
	return nil
}

func (m *memStore) ReplaceAll(ctx context.Context, villas []models.Villa) error {
	seen := make(map[string]bool, len(villas))
	for _, villa := range villas {
		if seen[villa.NameNormalized] {
			return ErrConflict
		}
		seen[villa.NameNormalized] = true
	}
	m.villas = append([]models.Villa{}, villas...)
	return nil
}

func sejourVilla(id, name, location string, price float64, guests int) models.Villa {
	return models.Villa{
		ID:             id,
		Name:           name,
		NameNormalized: NormalizeName(name),
		Location:       location,
		Category:       models.CategorySejour,
		Price:          price,
		PricingDetails: &models.PricingDetails{BasePrice: price},
		Guests:         guests,
		Status:         models.VillaStatusActive,
	}
}

func issuesOfKind(issues []Issue, kind IssueKind) []Issue {
	out := make([]Issue, 0)
	for _, issue := range issues {
		if issue.Kind == kind {
			out = append(out, issue)
		}
	}
	return out
}

func TestNormalizeName(t *testing.T) {
	if got := NormalizeName("  Villa   F3  "); got != "villa f3" {
		t.Fatalf("expected %q, got %q", "villa f3", got)
	}
	if NormalizeName("Villa F3") != NormalizeName("villa f3 ") {
		t.Fatalf("expected case and whitespace variants to normalize identically")
	}
}

func TestAuditDuplicateNames(t *testing.T) {
	store := &memStore{villas: []models.Villa{
		sejourVilla("villa-f3", "Villa F3", "Vauclin", 850, 6),
		sejourVilla("villa-f3-bis", "villa f3 ", "Vauclin", 850, 6),
		sejourVilla("villa-f5", "Villa F5", "Ste Anne", 1350, 10),
	}}

	auditor := NewAuditor(AuditConfig{})
	report, err := auditor.Run(context.Background(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	duplicates := issuesOfKind(report.Issues, IssueDuplicateName)
	if len(duplicates) != 1 {
		t.Fatalf("expected exactly 1 duplicate name issue, got %d", len(duplicates))
	}
	if duplicates[0].Severity != SeverityError {
		t.Fatalf("expected error severity, got %s", duplicates[0].Severity)
	}
	if len(duplicates[0].VillaIDs) != 2 {
		t.Fatalf("expected duplicate to name 2 villas, got %v", duplicates[0].VillaIDs)
	}
	if report.Passed {
		t.Fatalf("expected audit to fail on duplicate names")
	}
}

func TestAuditSimilarNamesAreWarnings(t *testing.T) {
	store := &memStore{villas: []models.Villa{
		sejourVilla("villa-f3-petit-macabou", "Villa F3 sur Petit Macabou", "Vauclin", 850, 6),
		sejourVilla("villa-f6-petit-macabou", "Villa F6 sur Petit Macabou", "Vauclin", 2000, 13),
	}}

	auditor := NewAuditor(AuditConfig{})
	report, err := auditor.Run(context.Background(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	similar := issuesOfKind(report.Issues, IssueSimilarName)
	if len(similar) != 1 {
		t.Fatalf("expected 1 similar name warning, got %d", len(similar))
	}
	if similar[0].Severity != SeverityWarning {
		t.Fatalf("expected warning severity, got %s", similar[0].Severity)
	}
	if !report.Passed {
		t.Fatalf("warnings alone must not fail the audit")
	}
}

func TestAuditCountMismatch(t *testing.T) {
	store := &memStore{villas: []models.Villa{
		sejourVilla("villa-f3", "Villa F3", "Vauclin", 850, 6),
	}}

	auditor := NewAuditor(AuditConfig{ExpectedTotal: 21})
	report, err := auditor.Run(context.Background(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(issuesOfKind(report.Issues, IssueCountMismatch)) != 1 {
		t.Fatalf("expected a count mismatch issue, got %v", report.Issues)
	}
	if report.Passed {
		t.Fatalf("expected audit to fail on count mismatch")
	}
}

func TestAuditDistributionMismatch(t *testing.T) {
	store := &memStore{villas: []models.Villa{
		sejourVilla("villa-f3", "Villa F3", "Vauclin", 850, 6),
		sejourVilla("villa-f5", "Villa F5", "Ste Anne", 1350, 10),
	}}

	auditor := NewAuditor(AuditConfig{
		ExpectedDistribution: map[string]int{
			models.CategorySejour: 2,
			models.CategoryFete:   1,
		},
	})
	report, err := auditor.Run(context.Background(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mismatches := issuesOfKind(report.Issues, IssueCategoryDistributionMismatch)
	if len(mismatches) != 1 {
		t.Fatalf("expected 1 distribution mismatch, got %d", len(mismatches))
	}
	if !strings.Contains(mismatches[0].Message, "fete") {
		t.Fatalf("expected the fete category to be flagged, got %q", mismatches[0].Message)
	}
}

func TestAuditRequiredVillaPriceMismatch(t *testing.T) {
	villas := ReleaseSnapshot()
	for i := range villas {
		villas[i].ID = NormalizeName(villas[i].Name)
		villas[i].NameNormalized = NormalizeName(villas[i].Name)
		if strings.Contains(villas[i].Name, "Espace Piscine") {
			villas[i].Price = 300
			villas[i].PricingDetails.BasePrice = 300
		}
	}
	store := &memStore{villas: villas}

	auditor := NewAuditor(AuditConfig{RequiredVillas: DefaultRequiredVillas()})
	report, err := auditor.Run(context.Background(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mismatches := issuesOfKind(report.Issues, IssueRequiredVillaPriceMismatch)
	if len(mismatches) != 1 {
		t.Fatalf("expected 1 required villa price mismatch, got %d: %v", len(mismatches), report.Issues)
	}
	if report.Passed {
		t.Fatalf("expected audit to fail on required villa price mismatch")
	}
}

func TestAuditRequiredVillaFuzzyMatch(t *testing.T) {
	store := &memStore{villas: []models.Villa{
		sejourVilla("espace-piscine", "Espace Piscine Journée Bungalow", "Vauclin", 350, 9),
	}}

	auditor := NewAuditor(AuditConfig{
		RequiredVillas: []RequiredVilla{
			{NameSubstring: "Espace Piscine Journée", ExpectedPrice: 350},
		},
	})
	report, err := auditor.Run(context.Background(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(issuesOfKind(report.Issues, IssueRequiredVillaMissing)) != 0 {
		t.Fatalf("expected longer stored name to satisfy the required substring")
	}
}

func TestValidatePriceFields(t *testing.T) {
	tests := []struct {
		name  string
		villa models.Villa
		kind  IssueKind
	}{
		{
			name: "price mismatch",
			villa: models.Villa{
				ID: "v1", Name: "Villa A", Category: models.CategorySejour, Price: 850,
				PricingDetails: &models.PricingDetails{BasePrice: 900},
			},
			kind: IssuePriceMismatch,
		},
		{
			name: "unknown category",
			villa: models.Villa{
				ID: "v2", Name: "Villa B", Category: "luxe", Price: 850,
				PricingDetails: &models.PricingDetails{BasePrice: 850},
			},
			kind: IssueUnknownCategory,
		},
		{
			name: "party rate below base",
			villa: models.Villa{
				ID: "v3", Name: "Villa C", Category: models.CategoryFete, Price: 400,
				PricingDetails: &models.PricingDetails{
					BasePrice:  400,
					PartyRates: map[string]float64{"30": 350},
				},
			},
			kind: IssueInvalidSurcharge,
		},
		{
			name: "non positive price",
			villa: models.Villa{
				ID: "v4", Name: "Villa D", Category: models.CategorySejour, Price: 0,
			},
			kind: IssueNonPositivePrice,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			issues := ValidatePriceFields(tc.villa)
			found := issuesOfKind(issues, tc.kind)
			if len(found) != 1 {
				t.Fatalf("expected exactly 1 %s issue, got %d in %v", tc.kind, len(found), issues)
			}
			if found[0].Severity != SeverityError {
				t.Fatalf("expected error severity, got %s", found[0].Severity)
			}
		})
	}
}

func TestValidatePriceFieldsCleanVilla(t *testing.T) {
	villa := sejourVilla("villa-f3", "Villa F3", "Vauclin", 850, 6)
	if issues := ValidatePriceFields(villa); len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestSearchConjunction(t *testing.T) {
	fete := sejourVilla("c", "C", "Vauclin", 400, 4)
	fete.Category = models.CategoryFete
	store := &memStore{villas: []models.Villa{
		sejourVilla("a", "A", "Vauclin", 850, 6),
		sejourVilla("b", "B", "Ste Anne", 1350, 10),
		fete,
	}}
	service := NewService(store, time.UTC)

	villas, err := service.Search(context.Background(), SearchFilter{
		Destination: "Vauclin",
		Category:    models.CategorySejour,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(villas) != 1 || villas[0].Name != "A" {
		t.Fatalf("expected exactly villa A, got %v", villas)
	}

	villas, err = service.Search(context.Background(), SearchFilter{
		Destination: "vauclin",
		MinGuests:   5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(villas) != 1 || villas[0].Name != "A" {
		t.Fatalf("expected guests filter to keep only villa A, got %v", villas)
	}
}

func TestSearchExcludesInactive(t *testing.T) {
	inactive := sejourVilla("b", "B", "Le Vauclin", 400, 6)
	inactive.Status = models.VillaStatusInactive
	store := &memStore{villas: []models.Villa{
		sejourVilla("a", "A", "Le Vauclin", 850, 6),
		inactive,
	}}
	service := NewService(store, time.UTC)

	villas, err := service.Search(context.Background(), SearchFilter{Destination: "vauclin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(villas) != 1 || villas[0].Name != "A" {
		t.Fatalf("expected only the active villa, got %v", villas)
	}
}

func TestUpsertRejectsPricing(t *testing.T) {
	service := NewService(&memStore{}, time.UTC)

	_, err := service.Upsert(context.Background(), models.Villa{
		Name:           "Villa Broken",
		Location:       "Vauclin",
		Category:       models.CategorySejour,
		Price:          850,
		PricingDetails: &models.PricingDetails{BasePrice: 900},
		Guests:         6,
	})

	var rejected *PricingRejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected PricingRejectedError, got %v", err)
	}
	if len(issuesOfKind(rejected.Issues, IssuePriceMismatch)) != 1 {
		t.Fatalf("expected a price mismatch issue, got %v", rejected.Issues)
	}
}

func TestUpsertDefaults(t *testing.T) {
	store := &memStore{}
	service := NewService(store, time.UTC)

	villa, err := service.Upsert(context.Background(), models.Villa{
		Name:     "  Villa F3 sur Petit Macabou  ",
		Location: "Petit Macabou au Vauclin",
		Category: models.CategorySejour,
		Price:    850,
		Guests:   6,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if villa.ID != "villa-f3-sur-petit-macabou" {
		t.Fatalf("expected slug id, got %q", villa.ID)
	}
	if villa.NameNormalized != "villa f3 sur petit macabou" {
		t.Fatalf("unexpected normalized name %q", villa.NameNormalized)
	}
	if villa.Status != models.VillaStatusActive {
		t.Fatalf("expected default status active, got %q", villa.Status)
	}
	if villa.CreatedAt.IsZero() || villa.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestReleaseSnapshotAuditPasses(t *testing.T) {
	villas := ReleaseSnapshot()
	for i := range villas {
		villas[i].NameNormalized = NormalizeName(villas[i].Name)
		villas[i].ID = NormalizeName(villas[i].Name)
	}
	store := &memStore{villas: villas}

	auditor := NewAuditor(AuditConfig{
		ExpectedTotal: 21,
		ExpectedDistribution: map[string]int{
			models.CategorySejour:  15,
			models.CategoryFete:    5,
			models.CategoryPiscine: 1,
		},
		RequiredVillas: DefaultRequiredVillas(),
	})
	report, err := auditor.Run(context.Background(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TotalVillas != 21 {
		t.Fatalf("expected 21 villas, got %d", report.TotalVillas)
	}
	if !report.Passed {
		t.Fatalf("expected release snapshot to pass the audit, issues: %v", report.Issues)
	}
	for _, issue := range report.Issues {
		if issue.Severity == SeverityError {
			t.Fatalf("unexpected error issue: %+v", issue)
		}
	}
}

func TestNameSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"villa f3 sur petit macabou", "villa f6 sur petit macabou", 0.8},
		{"espace piscine journée", "espace piscine journée bungalow", 1.0},
		{"villa f3", "studio cocooning", 0},
	}
	for _, tc := range tests {
		if got := nameSimilarity(tc.a, tc.b); got != tc.want {
			t.Fatalf("nameSimilarity(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestReseedNormalizes(t *testing.T) {
	store := &memStore{}
	service := NewService(store, time.UTC)

	err := service.Reseed(context.Background(), []models.Villa{
		{Name: "Villa F3", Location: "Vauclin", Category: models.CategorySejour, Price: 850, Guests: 6},
		{Name: "Villa F5", Location: "Ste Anne", Category: models.CategorySejour, Price: 1350, Guests: 10},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	villas, _ := store.GetAll(context.Background())
	if len(villas) != 2 {
		t.Fatalf("expected 2 villas, got %d", len(villas))
	}
	for _, villa := range villas {
		if villa.NameNormalized == "" || villa.ID == "" {
			t.Fatalf("expected reseed to normalize %q", villa.Name)
		}
		if villa.Status != models.VillaStatusActive {
			t.Fatalf("expected default status active, got %q", villa.Status)
		}
	}
}

func TestReseedRejectsDuplicateNames(t *testing.T) {
	store := &memStore{}
	service := NewService(store, time.UTC)

	err := service.Reseed(context.Background(), []models.Villa{
		{Name: "Villa F3", Location: "Vauclin", Category: models.CategorySejour, Price: 850, Guests: 6},
		{Name: "villa f3 ", Location: "Vauclin", Category: models.CategorySejour, Price: 850, Guests: 6},
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}
