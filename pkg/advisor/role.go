// Package advisor maps colony worker roles to the skills they need and
// ranks roles against a set of player skill points.
package advisor

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrMalformedTable = errors.New("malformed role table")
	ErrRoleNotFound   = errors.New("role not found")
	ErrMalformedSkill = errors.New("malformed skill")
	ErrInvalidValue   = errors.New("invalid skill value")
)

// Requirement is a single skill a role depends on.
type Requirement struct {
	Skill       string `json:"skill" yaml:"skill"`
	Description string `json:"description" yaml:"description"`
}

// Role is a worker archetype with a primary and a secondary skill.
type Role struct {
	Name      string      `json:"name" yaml:"name"`
	Primary   Requirement `json:"primary" yaml:"primary"`
	Secondary Requirement `json:"secondary" yaml:"secondary"`
}

// Requires reports whether skill is the primary or secondary skill of the role.
func (r Role) Requires(skill string) bool {
	return skill == r.Primary.Skill || skill == r.Secondary.Skill
}

// Capitalize upper-cases the first letter of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// Title upper-cases the first letter of every word in s.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
