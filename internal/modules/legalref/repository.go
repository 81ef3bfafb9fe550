// Package legalref holds the statute excerpt catalog and its cross-index
// from finding ids to supporting references.
package legalref

import (
	"database/sql"
	"fmt"
)

// Repository answers reference lookups by statute id and by finding id.
// It is immutable after construction and safe for concurrent use.
type Repository struct {
	byID  map[string]Reference
	index map[string][]string
}

// New builds a repository from the built-in catalog.
func New() *Repository {
	byID := make(map[string]Reference, len(references))
	for _, ref := range references {
		byID[ref.ID] = ref
	}
	return &Repository{byID: byID, index: crossIndex}
}

// ByID returns the reference with the given statute id.
func (r *Repository) ByID(id string) (Reference, bool) {
	ref, ok := r.byID[id]
	return ref, ok
}

// ForFinding returns the references cross-indexed for a finding id, in
// citation order. Unknown finding ids resolve to an empty list.
func (r *Repository) ForFinding(findingID string) []Reference {
	ids := r.index[findingID]
	refs := make([]Reference, 0, len(ids))
	for _, id := range ids {
		if ref, ok := r.byID[id]; ok {
			refs = append(refs, ref)
		}
	}
	return refs
}

// Len returns the number of references in the catalog.
func (r *Repository) Len() int {
	return len(r.byID)
}

// LoadFromDB builds a repository from a sqlite database holding the full
// statute texts. The schema mirrors the built-in catalog: legal_references
// carries the excerpts and finding_references the cross-index, ordered by
// position.
func LoadFromDB(db *sql.DB) (*Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("db is nil")
	}

	rows, err := db.Query(`
		SELECT id, statute, article, title, excerpt
		FROM legal_references
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query legal references: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]Reference)
	for rows.Next() {
		var ref Reference
		if err := rows.Scan(&ref.ID, &ref.Statute, &ref.Article, &ref.Title, &ref.Excerpt); err != nil {
			return nil, fmt.Errorf("failed to scan legal reference: %w", err)
		}
		byID[ref.ID] = ref
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating legal references: %w", err)
	}

	indexRows, err := db.Query(`
		SELECT finding_id, reference_id
		FROM finding_references
		ORDER BY finding_id, position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query finding references: %w", err)
	}
	defer indexRows.Close()

	index := make(map[string][]string)
	for indexRows.Next() {
		var findingID, referenceID string
		if err := indexRows.Scan(&findingID, &referenceID); err != nil {
			return nil, fmt.Errorf("failed to scan finding reference: %w", err)
		}
		index[findingID] = append(index[findingID], referenceID)
	}
	if err := indexRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating finding references: %w", err)
	}

	return &Repository{byID: byID, index: index}, nil
}
