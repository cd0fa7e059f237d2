package applications

import (
	"fmt"
	"strconv"
	"strings"

	"job-tracker/feature/applications/models"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
)

// Search modes accepted by the listing endpoints.
const (
	ModeSubstring = "substring"
	ModeFullText  = "fulltext"
)

// searchFields are the record fields a query is matched against.
var searchFields = []string{"JobTitle", "Company", "Notes"}

// Filter keeps the records whose job title, company or notes contain query,
// ignoring case. An empty query returns records unchanged.
func Filter(records []models.Record, q string) []models.Record {
	if q == "" {
		return records
	}

	needle := strings.ToLower(q)
	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.JobTitle), needle) ||
			strings.Contains(strings.ToLower(r.Company), needle) ||
			strings.Contains(strings.ToLower(r.Notes), needle) {
			out = append(out, r)
		}
	}
	return out
}

// indexedRecord is the document shape stored in the full-text index.
type indexedRecord struct {
	JobTitle string
	Company  string
	Notes    string
}

func buildIndexMapping() mapping.IndexMapping {
	docMapping := bleve.NewDocumentMapping()
	for _, field := range searchFields {
		docMapping.AddFieldMappingsAt(field, bleve.NewTextFieldMapping())
	}

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", docMapping)
	return indexMapping
}

// FullTextSearch matches query terms against the same fields as Filter using an
// in-memory Bleve index, tolerating one edit per term. Matches keep input order.
func FullTextSearch(records []models.Record, q string) ([]models.Record, error) {
	if strings.TrimSpace(q) == "" || len(records) == 0 {
		return records, nil
	}

	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}
	defer idx.Close()

	batch := idx.NewBatch()
	for i, r := range records {
		doc := indexedRecord{JobTitle: r.JobTitle, Company: r.Company, Notes: r.Notes}
		if err := batch.Index(strconv.Itoa(i), doc); err != nil {
			return nil, fmt.Errorf("batch index %d: %w", i, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		return nil, fmt.Errorf("commit batch: %w", err)
	}

	disjuncts := make([]query.Query, 0, len(searchFields))
	for _, field := range searchFields {
		mq := bleve.NewMatchQuery(q)
		mq.SetField(field)
		mq.SetFuzziness(1)
		disjuncts = append(disjuncts, mq)
	}

	req := bleve.NewSearchRequestOptions(bleve.NewDisjunctionQuery(disjuncts...), len(records), 0, false)
	results, err := idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	hits := make(map[int]struct{}, len(results.Hits))
	for _, hit := range results.Hits {
		if i, err := strconv.Atoi(hit.ID); err == nil {
			hits[i] = struct{}{}
		}
	}

	out := make([]models.Record, 0, len(hits))
	for i, r := range records {
		if _, ok := hits[i]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// Search dispatches to Filter or FullTextSearch by mode. An empty mode is a substring search.
func Search(records []models.Record, q, mode string) ([]models.Record, error) {
	switch mode {
	case "", ModeSubstring:
		return Filter(records, q), nil
	case ModeFullText:
		return FullTextSearch(records, q)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSearchMode, mode)
	}
}
