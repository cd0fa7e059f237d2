package cmd

import (
	"bytes"
	"strings"
	"testing"

	"job-tracker/feature/applications/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumnArgs(t *testing.T) {
	changes, err := parseColumnArgs([]string{"status date=true", "Notes=false", "ARCHIVED=1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{
		models.ColumnStatusDate: true,
		models.ColumnNotes:      false,
		models.ColumnArchived:   true,
	}, changes)

	_, err = parseColumnArgs([]string{"Notes"})
	assert.ErrorContains(t, err, "expected COLUMN=true|false")

	_, err = parseColumnArgs([]string{"Notes=maybe"})
	assert.ErrorContains(t, err, "invalid visibility")

	_, err = parseColumnArgs([]string{"Salary=true"})
	assert.ErrorContains(t, err, "unknown column")
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	printTable(&buf, []string{"Job Title", "Company"}, [][]string{
		{"Engineer", "Acme"},
		{strings.Repeat("x", 60), "Globex"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Job Title")
	assert.True(t, strings.HasPrefix(lines[1], "---"))
	assert.True(t, strings.HasPrefix(lines[2], "Engineer "))
	assert.True(t, strings.HasSuffix(lines[2], "Acme"))
	assert.Contains(t, lines[3], strings.Repeat("x", maxCellWidth-3)+"...")
	assert.NotContains(t, lines[3], strings.Repeat("x", maxCellWidth))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "line one", truncate("line\none", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}

func TestPrintPreferences(t *testing.T) {
	var buf bytes.Buffer
	printPreferences(&buf, models.DefaultVisibleColumns())

	out := buf.String()
	assert.Equal(t, len(models.DisplayColumns), strings.Count(out, "\n"))
	assert.Contains(t, out, "Date Archived")
}

func TestSyncArgs(t *testing.T) {
	defer func() { syncObject = "" }()

	assert.Error(t, syncCmd.Args(syncCmd, nil))
	assert.NoError(t, syncCmd.Args(syncCmd, []string{"export.csv"}))

	syncObject = "imports/a.csv"
	assert.NoError(t, syncCmd.Args(syncCmd, nil))
	assert.Error(t, syncCmd.Args(syncCmd, []string{"export.csv"}))
}
