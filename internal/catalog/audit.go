package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/models"
)

// RequiredVilla pins a villa the release snapshot must contain, matched by
// name substring because historical names drift slightly between imports.
type RequiredVilla struct {
	NameSubstring string  `json:"name_substring"`
	ExpectedPrice float64 `json:"expected_price"`
}

// AuditConfig is release data: expected totals changed across price-sheet
// releases, so none of it is hard-coded.
type AuditConfig struct {
	ExpectedTotal        int
	ExpectedDistribution map[string]int
	RequiredVillas       []RequiredVilla

	// Names sharing at least this token overlap are flagged as near
	// duplicates. Zero means the default.
	SimilarityThreshold float64
}

const defaultSimilarityThreshold = 0.75

type Report struct {
	GeneratedAt time.Time `json:"generated_at"`
	TotalVillas int       `json:"total_villas"`
	Issues      []Issue   `json:"issues"`
	Passed      bool      `json:"passed"`
}

type Auditor struct {
	cfg AuditConfig
}

func NewAuditor(cfg AuditConfig) *Auditor {
	if cfg.SimilarityThreshold <= 0 {
		cfg.SimilarityThreshold = defaultSimilarityThreshold
	}
	return &Auditor{cfg: cfg}
}

// Run audits the full catalog against the configured invariants. It only
// reads: data-quality findings are report entries, never raised errors.
func (a *Auditor) Run(ctx context.Context, store Store) (Report, error) {
	villas, err := store.GetAll(ctx)
	if err != nil {
		return Report{}, err
	}

	issues := make([]Issue, 0)
	issues = append(issues, a.checkCount(villas)...)
	issues = append(issues, a.checkDuplicates(villas)...)
	issues = append(issues, a.checkDistribution(villas)...)
	issues = append(issues, a.checkRequiredVillas(villas)...)
	for _, villa := range villas {
		issues = append(issues, ValidatePriceFields(villa)...)
	}

	passed := true
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			passed = false
			break
		}
	}

	return Report{
		GeneratedAt: time.Now().UTC(),
		TotalVillas: len(villas),
		Issues:      issues,
		Passed:      passed,
	}, nil
}

func (a *Auditor) checkCount(villas []models.Villa) []Issue {
	if a.cfg.ExpectedTotal <= 0 || len(villas) == a.cfg.ExpectedTotal {
		return nil
	}
	return []Issue{{
		Kind:     IssueCountMismatch,
		Severity: SeverityError,
		Message:  fmt.Sprintf("expected %d villas, found %d", a.cfg.ExpectedTotal, len(villas)),
	}}
}

func (a *Auditor) checkDuplicates(villas []models.Villa) []Issue {
	issues := make([]Issue, 0)

	byName := make(map[string][]string)
	byID := make(map[string]int)
	for _, villa := range villas {
		normalized := NormalizeName(villa.Name)
		byName[normalized] = append(byName[normalized], villa.ID)
		byID[villa.ID]++
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ids := byName[name]
		if len(ids) > 1 {
			issues = append(issues, Issue{
				Kind:     IssueDuplicateName,
				Severity: SeverityError,
				Message:  fmt.Sprintf("name %q is shared by %d villas", name, len(ids)),
				VillaIDs: ids,
			})
		}
	}

	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	// Impossible while the primary key holds, but manual JSON imports have
	// bypassed it before.
	for _, id := range ids {
		if byID[id] > 1 {
			issues = append(issues, Issue{
				Kind:     IssueDuplicateID,
				Severity: SeverityError,
				Message:  fmt.Sprintf("id %q appears %d times", id, byID[id]),
				VillaIDs: []string{id},
			})
		}
	}

	// Near duplicates are a warning class: distinct villas legitimately share
	// most of a name ("Villa F3 sur Petit Macabou" / "Villa F5 sur Petit
	// Macabou"), so only high-overlap pairs are flagged.
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if names[i] == names[j] {
				continue
			}
			if nameSimilarity(names[i], names[j]) >= a.cfg.SimilarityThreshold {
				issues = append(issues, Issue{
					Kind:     IssueSimilarName,
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("names %q and %q look like variants of the same villa", names[i], names[j]),
					VillaIDs: append(append([]string{}, byName[names[i]]...), byName[names[j]]...),
				})
			}
		}
	}

	return issues
}

func (a *Auditor) checkDistribution(villas []models.Villa) []Issue {
	if len(a.cfg.ExpectedDistribution) == 0 {
		return nil
	}

	actual := make(map[string]int)
	for _, villa := range villas {
		actual[villa.Category]++
	}

	categories := make([]string, 0, len(a.cfg.ExpectedDistribution))
	for category := range a.cfg.ExpectedDistribution {
		categories = append(categories, category)
	}
	for category := range actual {
		if _, ok := a.cfg.ExpectedDistribution[category]; !ok {
			categories = append(categories, category)
		}
	}
	sort.Strings(categories)

	issues := make([]Issue, 0)
	for _, category := range categories {
		expected := a.cfg.ExpectedDistribution[category]
		if actual[category] != expected {
			issues = append(issues, Issue{
				Kind:     IssueCategoryDistributionMismatch,
				Severity: SeverityError,
				Message:  fmt.Sprintf("category %q: expected %d villas, found %d", category, expected, actual[category]),
			})
		}
	}
	return issues
}

func (a *Auditor) checkRequiredVillas(villas []models.Villa) []Issue {
	issues := make([]Issue, 0)
	for _, required := range a.cfg.RequiredVillas {
		needle := NormalizeName(required.NameSubstring)
		var match *models.Villa
		for i := range villas {
			if strings.Contains(NormalizeName(villas[i].Name), needle) {
				match = &villas[i]
				break
			}
		}
		// Fuzzy fallback: names drift between imports, so a high token
		// overlap still counts as the same villa.
		if match == nil {
			for i := range villas {
				if nameSimilarity(NormalizeName(villas[i].Name), needle) >= a.cfg.SimilarityThreshold {
					match = &villas[i]
					break
				}
			}
		}
		if match == nil {
			issues = append(issues, Issue{
				Kind:     IssueRequiredVillaMissing,
				Severity: SeverityError,
				Message:  fmt.Sprintf("no villa matches required name %q", required.NameSubstring),
			})
			continue
		}
		if match.Price != required.ExpectedPrice {
			issues = append(issues, Issue{
				Kind:     IssueRequiredVillaPriceMismatch,
				Severity: SeverityError,
				Message:  fmt.Sprintf("villa %q priced %.2f, expected %.2f", match.Name, match.Price, required.ExpectedPrice),
				VillaIDs: []string{match.ID},
			})
		}
	}
	return issues
}

// nameSimilarity is the token overlap between two normalized names: the size
// of the shared token set over the size of the smaller set.
func nameSimilarity(a, b string) float64 {
	tokensA := strings.Fields(a)
	tokensB := strings.Fields(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	setA := make(map[string]bool, len(tokensA))
	for _, token := range tokensA {
		setA[token] = true
	}
	setB := make(map[string]bool, len(tokensB))
	for _, token := range tokensB {
		setB[token] = true
	}

	shared := 0
	for token := range setA {
		if setB[token] {
			shared++
		}
	}

	smaller := len(setA)
	if len(setB) < smaller {
		smaller = len(setB)
	}
	return float64(shared) / float64(smaller)
}
