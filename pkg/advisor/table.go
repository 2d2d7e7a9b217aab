package advisor

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	// DefaultSource names the table compiled into the binary.
	DefaultSource = "embedded"

	defaultTableFile = "info.csv"
	fieldsPerRow     = 5
)

//go:embed info.csv
var embedFS embed.FS

// Table is the read-only role reference table.
type Table struct {
	roles map[string]Role
	order []string
}

// Load parses role rows in the form
// role, primary skill, primary description, secondary skill, secondary description.
func Load(r io.Reader) (*Table, error) {
	if r == nil {
		return nil, errors.New("reader required")
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	cr.FieldsPerRecord = fieldsPerRow

	t := &Table{
		roles: make(map[string]Role),
		order: make([]string, 0),
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedTable, err)
		}

		line, _ := cr.FieldPos(0)
		role, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedTable, line, err)
		}
		if _, ok := t.roles[role.Name]; ok {
			return nil, fmt.Errorf("%w: line %d: duplicate role %q", ErrMalformedTable, line, role.Name)
		}

		t.roles[role.Name] = role
		t.order = append(t.order, role.Name)
	}

	if len(t.order) == 0 {
		return nil, fmt.Errorf("%w: no roles defined", ErrMalformedTable)
	}

	return t, nil
}

// LoadFile loads the table from a file on disk.
func LoadFile(path string) (*Table, error) {
	if path == "" {
		return nil, errors.New("table file path required")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening role table %s: %w", path, err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading role table %s: %w", path, err)
	}
	slog.Debug("role table loaded", "source", path, "roles", t.Len())
	return t, nil
}

// LoadDefault loads the table compiled into the binary.
func LoadDefault() (*Table, error) {
	f, err := embedFS.Open(defaultTableFile)
	if err != nil {
		return nil, fmt.Errorf("opening embedded role table: %w", err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading embedded role table: %w", err)
	}
	slog.Debug("role table loaded", "source", DefaultSource, "roles", t.Len())
	return t, nil
}

func parseRow(rec []string) (Role, error) {
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}

	r := Role{
		Name: normalize(rec[0]),
		Primary: Requirement{
			Skill:       normalize(rec[1]),
			Description: rec[2],
		},
		Secondary: Requirement{
			Skill:       normalize(rec[3]),
			Description: rec[4],
		},
	}

	switch {
	case r.Name == "":
		return r, errors.New("empty role name")
	case r.Primary.Skill == "":
		return r, fmt.Errorf("role %q: empty primary skill", r.Name)
	case r.Secondary.Skill == "":
		return r, fmt.Errorf("role %q: empty secondary skill", r.Name)
	}
	return r, nil
}

// Lookup returns the role with the given name, ignoring case.
func (t *Table) Lookup(name string) (Role, error) {
	key := normalize(name)
	r, ok := t.roles[key]
	if !ok {
		return Role{}, fmt.Errorf("%w: %q", ErrRoleNotFound, key)
	}
	return r, nil
}

// Roles returns role names in table order.
func (t *Table) Roles() []string {
	list := make([]string, len(t.order))
	copy(list, t.order)
	return list
}

// Len returns the number of roles.
func (t *Table) Len() int {
	return len(t.order)
}
