package catalog

import (
	"fmt"
	"sort"

	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/models"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type IssueKind string

const (
	IssueNonPositivePrice             IssueKind = "NonPositivePrice"
	IssuePriceMismatch                IssueKind = "PriceMismatch"
	IssueUnknownCategory              IssueKind = "UnknownCategory"
	IssueInvalidSurcharge             IssueKind = "InvalidSurcharge"
	IssueCountMismatch                IssueKind = "CountMismatch"
	IssueDuplicateName                IssueKind = "DuplicateName"
	IssueDuplicateID                  IssueKind = "DuplicateId"
	IssueSimilarName                  IssueKind = "SimilarName"
	IssueCategoryDistributionMismatch IssueKind = "CategoryDistributionMismatch"
	IssueRequiredVillaMissing         IssueKind = "RequiredVillaMissing"
	IssueRequiredVillaPriceMismatch   IssueKind = "RequiredVillaPriceMismatch"
)

type Issue struct {
	Kind     IssueKind `json:"kind"`
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
	VillaIDs []string  `json:"villa_ids,omitempty"`
}

// ValidatePriceFields runs the per-villa pricing checks. It is pure: no I/O,
// no mutation, safe to call from both the audit and the upsert path.
func ValidatePriceFields(villa models.Villa) []Issue {
	issues := make([]Issue, 0)

	if villa.Price <= 0 {
		issues = append(issues, Issue{
			Kind:     IssueNonPositivePrice,
			Severity: SeverityError,
			Message:  fmt.Sprintf("villa %q has non-positive price %.2f", villa.Name, villa.Price),
			VillaIDs: []string{villa.ID},
		})
	}

	if !models.KnownCategory(villa.Category) {
		issues = append(issues, Issue{
			Kind:     IssueUnknownCategory,
			Severity: SeverityError,
			Message:  fmt.Sprintf("villa %q has unknown category %q", villa.Name, villa.Category),
			VillaIDs: []string{villa.ID},
		})
	}

	if villa.PricingDetails == nil {
		return issues
	}

	details := villa.PricingDetails
	if details.BasePrice <= 0 {
		issues = append(issues, Issue{
			Kind:     IssueNonPositivePrice,
			Severity: SeverityError,
			Message:  fmt.Sprintf("villa %q has non-positive base_price %.2f", villa.Name, details.BasePrice),
			VillaIDs: []string{villa.ID},
		})
	}

	if villa.Price != details.BasePrice {
		issues = append(issues, Issue{
			Kind:     IssuePriceMismatch,
			Severity: SeverityError,
			Message:  fmt.Sprintf("villa %q price %.2f differs from base_price %.2f", villa.Name, villa.Price, details.BasePrice),
			VillaIDs: []string{villa.ID},
		})
	}

	// Party rates are absolute totals and can never undercut the base rate.
	tiers := make([]string, 0, len(details.PartyRates))
	for tier := range details.PartyRates {
		tiers = append(tiers, tier)
	}
	sort.Strings(tiers)
	for _, tier := range tiers {
		rate := details.PartyRates[tier]
		if rate < details.BasePrice {
			issues = append(issues, Issue{
				Kind:     IssueInvalidSurcharge,
				Severity: SeverityError,
				Message:  fmt.Sprintf("villa %q party rate %q (%.2f) is below base_price %.2f", villa.Name, tier, rate, details.BasePrice),
				VillaIDs: []string{villa.ID},
			})
		}
	}

	return issues
}
