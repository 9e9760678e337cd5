package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/rachitshetty07/Attendance-RCN/utils"
	"gopkg.in/yaml.v3"
)

// Roster is the fixed set of employees allowed to sign in.
type Roster struct {
	employees []model.Employee
	byEmail   map[string]model.Employee
}

func NewRoster(employees []model.Employee) (*Roster, error) {
	r := &Roster{byEmail: make(map[string]model.Employee, len(employees))}
	for _, e := range employees {
		e.Email = strings.TrimSpace(e.Email)
		key := model.NormalizeEmail(e.Email)
		if key == "" {
			return nil, fmt.Errorf("employee %q has no email", e.Name)
		}
		if !e.Role.Valid() {
			return nil, fmt.Errorf("employee %s has invalid role %q", e.Email, e.Role)
		}
		if _, dup := r.byEmail[key]; dup {
			return nil, fmt.Errorf("duplicate employee email %s", e.Email)
		}
		r.byEmail[key] = e
		r.employees = append(r.employees, e)
	}
	return r, nil
}

// Find matches email case-insensitively.
func (r *Roster) Find(email string) (model.Employee, bool) {
	e, ok := r.byEmail[model.NormalizeEmail(email)]
	return e, ok
}

func (r *Roster) All() []model.Employee {
	return slices.Clone(r.employees)
}

type rosterFile struct {
	Employees []model.Employee `yaml:"employees"`
}

func ParseRosterYAML(in io.Reader) (*Roster, error) {
	var f rosterFile
	if err := yaml.NewDecoder(in).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode roster yaml: %w", err)
	}
	return NewRoster(f.Employees)
}

// ParseRosterCSV expects an email,name,role header.
func ParseRosterCSV(in io.Reader) (*Roster, error) {
	rows, err := utils.ParseCSVRows(in)
	if err != nil {
		return nil, fmt.Errorf("decode roster csv: %w", err)
	}
	return NewRoster(utils.Map(rows, func(row map[string]string) model.Employee {
		return model.Employee{Email: row["email"], Name: row["name"], Role: model.Role(strings.ToLower(row["role"]))}
	}))
}

func LoadRoster(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ParseRosterCSV(f)
	case ".yaml", ".yml":
		return ParseRosterYAML(f)
	default:
		return nil, fmt.Errorf("unsupported roster format %s", filepath.Ext(path))
	}
}
