package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	csvData := `email,name,role
alice@example.com,Alice,manager
bob@example.com,Bob,member`

	got, err := ParseCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	want := [][]string{
		{"email", "name", "role"},
		{"alice@example.com", "Alice", "manager"},
		{"bob@example.com", "Bob", "member"},
	}
	assert.Equal(t, want, got)
}

func TestParseCSVRows(t *testing.T) {
	csvData := "Email, Name ,ROLE\nalice@example.com, Alice ,manager\n"

	rows, err := ParseCSVRows(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "alice@example.com", rows[0]["email"])
	assert.Equal(t, "Alice", rows[0]["name"])
	assert.Equal(t, "manager", rows[0]["role"])
}

func TestParseCSVRowsEmpty(t *testing.T) {
	_, err := ParseCSVRows(strings.NewReader(""))
	assert.Error(t, err)
}
