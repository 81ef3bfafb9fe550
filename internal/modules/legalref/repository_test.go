package legalref

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestCrossIndex_ResolvesAgainstCatalog(t *testing.T) {
	// Every cross-indexed reference id must exist in the catalog, otherwise
	// a finding would silently lose a citation.
	repo := New()
	for findingID, refIDs := range crossIndex {
		for _, id := range refIDs {
			_, ok := repo.ByID(id)
			assert.True(t, ok, "finding %s cites unknown reference %s", findingID, id)
		}
	}
}

func TestCrossIndex_CoversAllFindingFamilies(t *testing.T) {
	// 27 rule criteria, 20 bookkeeping patterns, 16 transaction scenarios.
	families := map[byte]int{}
	for findingID := range crossIndex {
		families[findingID[0]]++
	}
	assert.Equal(t, 27, families['K'])
	assert.Equal(t, 20, families['R'])
	assert.Equal(t, 16, families['S'])
}

func TestForFinding_ExactSubsetInOrder(t *testing.T) {
	repo := New()

	refs := repo.ForFinding("K002")
	require.Len(t, refs, 2)
	assert.Equal(t, "VUK-134", refs[0].ID)
	assert.Equal(t, "VUK-30", refs[1].ID)
}

func TestForFinding_UnknownIDIsEmpty(t *testing.T) {
	repo := New()
	assert.Empty(t, repo.ForFinding("K999"))
}

func TestByID(t *testing.T) {
	repo := New()

	ref, ok := repo.ByID("KVK-12")
	require.True(t, ok)
	assert.Equal(t, "Kurumlar Vergisi Kanunu", ref.Statute)
	assert.Equal(t, "Madde 12", ref.Article)
	assert.NotEmpty(t, ref.Excerpt)

	_, ok = repo.ByID("VUK-0")
	assert.False(t, ok)
}

func TestLoadFromDB(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE legal_references (
			id TEXT PRIMARY KEY,
			statute TEXT NOT NULL,
			article TEXT NOT NULL,
			title TEXT NOT NULL,
			excerpt TEXT NOT NULL
		);
		CREATE TABLE finding_references (
			finding_id TEXT NOT NULL,
			reference_id TEXT NOT NULL,
			position INTEGER NOT NULL
		);
	`)
	require.NoError(t, err)

	_, err = db.Exec(`
		INSERT INTO legal_references VALUES
			('VUK-134', 'Vergi Usul Kanunu', 'Madde 134', 'Vergi incelemesinin maksadı', 'Tam metin.'),
			('VUK-30', 'Vergi Usul Kanunu', 'Madde 30', 'Re''sen vergi tarhı', 'Tam metin.');
		INSERT INTO finding_references VALUES
			('K002', 'VUK-134', 0),
			('K002', 'VUK-30', 1);
	`)
	require.NoError(t, err)

	repo, err := LoadFromDB(db)
	require.NoError(t, err)

	assert.Equal(t, 2, repo.Len())
	refs := repo.ForFinding("K002")
	require.Len(t, refs, 2)
	assert.Equal(t, "VUK-134", refs[0].ID)
	assert.Equal(t, "VUK-30", refs[1].ID)
}

func TestLoadFromDB_NilDB(t *testing.T) {
	_, err := LoadFromDB(nil)
	assert.Error(t, err)
}
