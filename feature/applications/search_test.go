package applications

import (
	"testing"

	"job-tracker/feature/applications/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []models.Record {
	return []models.Record{
		{JobTitle: "Software Engineer", Company: "Acme", Notes: "Referral from Sam"},
		{JobTitle: "Data Analyst", Company: "Globex", Notes: ""},
		{JobTitle: "Backend Developer", Company: "Initech", Notes: "remote friendly"},
	}
}

func TestFilter(t *testing.T) {
	records := testRecords()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query", "", []string{"Acme", "Globex", "Initech"}},
		{"title case insensitive", "ENGINEER", []string{"Acme"}},
		{"company", "glob", []string{"Globex"}},
		{"notes", "remote", []string{"Initech"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []string{}
			for _, r := range Filter(records, tt.query) {
				got = append(got, r.Company)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFullTextSearch(t *testing.T) {
	records := testRecords()

	got, err := FullTextSearch(records, "developr")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Initech", got[0].Company)

	got, err = FullTextSearch(records, "acme globex")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Acme", got[0].Company)
	assert.Equal(t, "Globex", got[1].Company)

	got, err = FullTextSearch(records, "  ")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSearch_UnknownMode(t *testing.T) {
	_, err := Search(testRecords(), "acme", "regex")
	assert.ErrorIs(t, err, ErrUnknownSearchMode)
}
