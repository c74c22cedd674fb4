// Package catalog holds the static suggestion catalogs and the fixed category set.
package catalog

import (
	"strconv"
	"strings"
	"time"
)

// Category identifies a field type with its own suggestion catalog and
// recency/custom lists.
type Category string

// The fixed category set. Each category has a static candidate list loaded at
// startup and never mutated.
const (
	Degrees      Category = "degrees"
	Majors       Category = "majors"
	Universities Category = "universities"
	Years        Category = "years"
	Positions    Category = "positions"
	Companies    Category = "companies"
	Durations    Category = "durations"
	Skills       Category = "skills"
)

// All lists every valid category.
func All() []Category {
	return []Category{Degrees, Majors, Universities, Years, Positions, Companies, Durations, Skills}
}

// Valid reports whether c is a member of the fixed category set.
func Valid(c Category) bool {
	_, ok := data[c]
	return ok
}

// Entries returns the static candidate list for a category, in catalog order.
// Unknown categories yield nil. The returned slice must not be mutated.
func Entries(c Category) []string {
	return data[c]
}

// Contains reports whether value appears case-insensitively in the static
// catalog for the category.
func Contains(c Category, value string) bool {
	for _, entry := range data[c] {
		if strings.EqualFold(entry, value) {
			return true
		}
	}
	return false
}

var data map[Category][]string

func init() {
	data = map[Category][]string{
		Degrees:      degrees,
		Majors:       majors,
		Universities: universities,
		Years:        graduationYears(time.Now().Year()),
		Positions:    positions,
		Companies:    companies,
		Durations:    durations,
		Skills:       skills,
	}
}

// graduationYears builds the years list: the past 50 years through 9 years out.
func graduationYears(current int) []string {
	years := make([]string, 0, 60)
	for y := current - 50; y < current+10; y++ {
		years = append(years, strconv.Itoa(y))
	}
	return years
}
