package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/kchia/paperflow-ai/db"
	"github.com/kchia/paperflow-ai/models"
)

// QuoteRepository handles database operations for the historical quote index
type QuoteRepository struct{}

// NewQuoteRepository creates a new QuoteRepository
func NewQuoteRepository() *QuoteRepository {
	return &QuoteRepository{}
}

// Ensure QuoteRepository implements QuoteRepositoryInterface
var _ QuoteRepositoryInterface = (*QuoteRepository)(nil)

// Search returns past quotes matching any of the keywords, most relevant
// first. Relevance is the number of keywords that hit the job type, event
// type or explanation.
func (r *QuoteRepository) Search(ctx context.Context, keywords []string, limit int) ([]models.PastQuote, error) {
	log.Printf("📦 SearchQuotes: keywords=%v limit=%d", keywords, limit)

	terms := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			terms = append(terms, kw)
		}
	}
	if len(terms) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = 5
	}

	var conditions []string
	var ranks []string
	var args []interface{}
	for i, term := range terms {
		placeholder := fmt.Sprintf("$%d", i+1)
		match := fmt.Sprintf("(job_type ILIKE %s OR event_type ILIKE %s OR quote_explanation ILIKE %s)",
			placeholder, placeholder, placeholder)
		conditions = append(conditions, match)
		ranks = append(ranks, fmt.Sprintf("(CASE WHEN %s THEN 1 ELSE 0 END)", match))
		args = append(args, "%"+term+"%")
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT job_type, event_type, total_amount, order_size, quote_explanation
		FROM quotes
		WHERE %s
		ORDER BY %s DESC, total_amount DESC
		LIMIT $%d
	`, strings.Join(conditions, " OR "), strings.Join(ranks, " + "), len(terms)+1)

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("❌ SearchQuotes: Error searching quotes: %v", err)
		return nil, fmt.Errorf("failed to search quotes: %w", err)
	}
	defer rows.Close()

	var quotes []models.PastQuote
	for rows.Next() {
		var q models.PastQuote
		var eventType, explanation sql.NullString
		if err := rows.Scan(&q.JobType, &eventType, &q.TotalAmount, &q.OrderSize, &explanation); err != nil {
			log.Printf("❌ SearchQuotes: Error scanning quote: %v", err)
			continue
		}
		if eventType.Valid {
			q.EventType = eventType.String
		}
		if explanation.Valid {
			q.Explanation = explanation.String
		}
		quotes = append(quotes, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quotes: %w", err)
	}

	log.Printf("✅ SearchQuotes: Found %d quote(s)", len(quotes))
	return quotes, nil
}
