package agent

import (
	"regexp"
	"strings"
)

// internalPatterns matches operational detail that must never reach a
// customer: ledger identifiers, cash positions, margins, supplier logistics
// and raw error text
var internalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Transaction ID: \d+`),
	regexp.MustCompile(`(?i)\(ID: \d+\)`),
	regexp.MustCompile(`(?i)Updated Cash Balance: \$[\d,\.]+`),
	regexp.MustCompile(`(?i)Current balance: \$[\d,\.]+`),
	regexp.MustCompile(`(?i)Remaining after purchase: \$[\d,\.]+`),
	regexp.MustCompile(`(?i)Safety buffer maintained: [\d\.]+%`),
	regexp.MustCompile(`(?i)profit margin[:\s]+[\d\.]+%?`),
	regexp.MustCompile(`(?i)internal cost[:\s]+\$?[\d,\.]+`),
	regexp.MustCompile(`(?i)ERROR:.*`),
	regexp.MustCompile(`(?i)FATAL:.*`),
	regexp.MustCompile(`(?i)⚠️ WARNING:.*cash.*`),
	regexp.MustCompile(`(?i)SUPPLIER ORDER PLACED[^\n]*\n?`),
	regexp.MustCompile(`(?i)Expected Delivery: \d{4}-\d{2}-\d{2}`),
}

// blankLineRuns collapses the gaps stripping leaves behind
var blankLineRuns = regexp.MustCompile(`\n\s*\n\s*\n+`)

// Sanitize strips internal operational details from an outbound customer
// response. Applied to every response regardless of which handler produced
// it.
func Sanitize(response string) string {
	for _, pattern := range internalPatterns {
		response = pattern.ReplaceAllString(response, "")
	}

	response = blankLineRuns.ReplaceAllString(response, "\n\n")
	return strings.TrimSpace(response)
}
