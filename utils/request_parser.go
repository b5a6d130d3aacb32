package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kchia/paperflow-ai/models"
)

// lineItemRegex matches quantity + unit-noun phrases in both bulleted and
// bare-sentence forms:
//   "- 200 sheets of A4 glossy paper"
//   "I need 500 units of cardstock, 20 pieces of poster board"
var lineItemRegex = regexp.MustCompile(`(?i)(?:[-•*]\s*)?(\d+)\s+(?:sheets?|units?|pieces?)\s+(?:of\s+)?([^,\n]+)`)

// parentheticalRegex strips qualifiers like "(80gsm)" from descriptions
var parentheticalRegex = regexp.MustCompile(`\s*\([^)]*\)`)

// descriptorRegex strips color/descriptor words the catalog does not carry
var descriptorRegex = regexp.MustCompile(`(?i)\s+(white|black|colored|assorted\s+colors)\b`)

// ParseLineItems extracts ordered (quantity, description) pairs from a
// customer request. Duplicates are retained, not merged. Lines whose
// quantity does not parse as a positive integer are dropped silently.
// An empty result means "unable to parse", not "zero items ordered".
func ParseLineItems(requestText string) []models.LineItemRequest {
	matches := lineItemRegex.FindAllStringSubmatch(requestText, -1)

	items := make([]models.LineItemRequest, 0, len(matches))
	for _, m := range matches {
		quantity, err := strconv.Atoi(m[1])
		if err != nil || quantity <= 0 {
			continue
		}

		desc := strings.TrimSpace(m[2])
		desc = strings.TrimRight(desc, ".")
		desc = parentheticalRegex.ReplaceAllString(desc, "")
		desc = descriptorRegex.ReplaceAllString(desc, "")
		desc = strings.TrimSpace(desc)
		if desc == "" {
			continue
		}

		items = append(items, models.LineItemRequest{
			Quantity:       quantity,
			RawDescription: desc,
		})
	}

	return items
}
