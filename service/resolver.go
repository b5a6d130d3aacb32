package service

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/kchia/paperflow-ai/models"
	"github.com/kchia/paperflow-ai/repository"
)

// fuzzyMatchCutoff is the minimum similarity for a fuzzy catalog match
const fuzzyMatchCutoff = 0.6

// ResolverService maps free-text item names to canonical catalog names
type ResolverService struct {
	catalogRepo repository.CatalogRepositoryInterface
}

// NewResolverService creates a new ResolverService
func NewResolverService(catalogRepo repository.CatalogRepositoryInterface) *ResolverService {
	return &ResolverService{catalogRepo: catalogRepo}
}

// Resolve matches a requested item name against the catalog as of a date.
// The ladder is exact, case-insensitive, fuzzy similarity, then substring.
// It never fails: on a catalog read error or no match the requested name is
// returned unmatched.
func (s *ResolverService) Resolve(ctx context.Context, requestedName string, asOf string) models.ResolvedItem {
	requestedName = strings.TrimSpace(requestedName)

	items, err := s.catalogRepo.AllItems(ctx, asOf)
	if err != nil {
		log.Printf("⚠️ Resolve: Catalog unavailable, passing %q through unmatched: %v", requestedName, err)
		return unmatched(requestedName)
	}

	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	// Deterministic resolution when candidates tie
	sort.Strings(names)

	for _, name := range names {
		if name == requestedName {
			return models.ResolvedItem{
				RequestedName: requestedName,
				CanonicalName: name,
				Confidence:    models.MatchExact,
			}
		}
	}

	requestedLower := strings.ToLower(requestedName)
	for _, name := range names {
		if strings.ToLower(name) == requestedLower {
			log.Printf("✅ Resolve: %q matched %q (case insensitive)", requestedName, name)
			return models.ResolvedItem{
				RequestedName: requestedName,
				CanonicalName: name,
				Confidence:    models.MatchCaseInsensitive,
			}
		}
	}

	bestName := ""
	bestScore := 0.0
	for _, name := range names {
		score := similarity(requestedLower, strings.ToLower(name))
		if score > bestScore {
			bestScore = score
			bestName = name
		}
	}
	if bestScore >= fuzzyMatchCutoff {
		log.Printf("✅ Resolve: %q matched %q (fuzzy %.2f)", requestedName, bestName, bestScore)
		return models.ResolvedItem{
			RequestedName: requestedName,
			CanonicalName: bestName,
			Confidence:    models.MatchFuzzy,
		}
	}

	for _, name := range names {
		nameLower := strings.ToLower(name)
		if strings.Contains(nameLower, requestedLower) || strings.Contains(requestedLower, nameLower) {
			log.Printf("✅ Resolve: %q matched %q (substring)", requestedName, name)
			return models.ResolvedItem{
				RequestedName: requestedName,
				CanonicalName: name,
				Confidence:    models.MatchSubstring,
			}
		}
	}

	log.Printf("⚠️ Resolve: No catalog match for %q", requestedName)
	return unmatched(requestedName)
}

func unmatched(requestedName string) models.ResolvedItem {
	return models.ResolvedItem{
		RequestedName: requestedName,
		CanonicalName: requestedName,
		Confidence:    models.MatchUnmatched,
	}
}

// similarity is 1 minus the normalized edit distance between two strings
func similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 1 - float64(distance)/float64(maxLen)
}
