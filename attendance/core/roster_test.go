package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterFindIgnoresCase(t *testing.T) {
	r := testRoster(t)

	emp, ok := r.Find("  ALICE@RCN.EXAMPLE ")
	require.True(t, ok)
	assert.Equal(t, "Alice", emp.Name)

	_, ok = r.Find("nobody@rcn.example")
	assert.False(t, ok)
	assert.Len(t, r.All(), 3)
}

func TestNewRosterValidation(t *testing.T) {
	tests := []struct {
		name      string
		employees []model.Employee
	}{
		{name: "missing email", employees: []model.Employee{{Name: "X", Role: model.RoleMember}}},
		{name: "bad role", employees: []model.Employee{{Email: "x@y.z", Role: "owner"}}},
		{name: "duplicate", employees: []model.Employee{
			{Email: "x@y.z", Role: model.RoleMember},
			{Email: "X@Y.Z", Role: model.RoleManager},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRoster(tt.employees)
			assert.Error(t, err)
		})
	}
}

func TestParseRosterYAML(t *testing.T) {
	in := `employees:
  - email: manager@rcn.example
    name: Meera Rao
    role: manager
  - email: alice@rcn.example
    name: Alice
    role: member
`
	r, err := ParseRosterYAML(strings.NewReader(in))
	require.NoError(t, err)
	emp, ok := r.Find("manager@rcn.example")
	require.True(t, ok)
	assert.True(t, emp.IsManager())
}

func TestLoadRosterCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.csv")
	require.NoError(t, os.WriteFile(path, []byte("email,name,role\nalice@rcn.example,Alice,Member\n"), 0o600))

	r, err := LoadRoster(path)
	require.NoError(t, err)
	emp, ok := r.Find("alice@rcn.example")
	require.True(t, ok)
	assert.Equal(t, model.RoleMember, emp.Role)

	_, err = LoadRoster(filepath.Join(t.TempDir(), "employees.json"))
	assert.Error(t, err)
}
