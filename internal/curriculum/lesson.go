// Package curriculum loads and queries the lesson catalog. The catalog
// is external data consumed by the toolchain, not generated by it: each
// lesson names the error codes it teaches, its objectives, and the
// lessons a learner should finish first.
package curriculum

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/wobble-lang/wobble/compiler/errors"
)

// Lesson is one curriculum entry.
type Lesson struct {
	Number        int      `toml:"number" json:"number"`
	Title         string   `toml:"title" json:"title"`
	ErrorCodes    []string `toml:"error_codes" json:"errorCodes"`
	Objectives    []string `toml:"objectives" json:"objectives"`
	Prerequisites []int    `toml:"prerequisites" json:"prerequisites"`
}

// Catalog is an ordered set of lessons.
type Catalog struct {
	Lessons []Lesson `toml:"lesson"`
}

// Load reads a catalog from a TOML file and validates it.
func Load(path string) (*Catalog, error) {
	var catalog Catalog
	if _, err := toml.DecodeFile(path, &catalog); err != nil {
		return nil, fmt.Errorf("failed to read lesson catalog: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	catalog.sortByNumber()
	return &catalog, nil
}

// Parse decodes a catalog from TOML text and validates it.
func Parse(data string) (*Catalog, error) {
	var catalog Catalog
	if _, err := toml.Decode(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse lesson catalog: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	catalog.sortByNumber()
	return &catalog, nil
}

// Validate checks lesson numbers are unique and positive, error codes are
// well-formed, and every prerequisite refers to a lesson in the catalog.
func (c *Catalog) Validate() error {
	seen := make(map[int]bool, len(c.Lessons))
	for _, lesson := range c.Lessons {
		if lesson.Number <= 0 {
			return fmt.Errorf("lesson %q has non-positive number %d", lesson.Title, lesson.Number)
		}
		if seen[lesson.Number] {
			return fmt.Errorf("duplicate lesson number %d", lesson.Number)
		}
		seen[lesson.Number] = true

		for _, code := range lesson.ErrorCodes {
			if _, err := errors.Normalize(code); err != nil {
				return fmt.Errorf("lesson %d: %w", lesson.Number, err)
			}
		}
	}

	for _, lesson := range c.Lessons {
		for _, prereq := range lesson.Prerequisites {
			if !seen[prereq] {
				return fmt.Errorf("lesson %d requires unknown lesson %d", lesson.Number, prereq)
			}
		}
	}

	return nil
}

// ByNumber returns the lesson with the given number.
func (c *Catalog) ByNumber(number int) (Lesson, bool) {
	for _, lesson := range c.Lessons {
		if lesson.Number == number {
			return lesson, true
		}
	}
	return Lesson{}, false
}

// ByErrorCode returns every lesson teaching the given code, in lesson order.
func (c *Catalog) ByErrorCode(code errors.Code) []Lesson {
	var out []Lesson
	for _, lesson := range c.Lessons {
		for _, raw := range lesson.ErrorCodes {
			if normalized, err := errors.Normalize(raw); err == nil && normalized == code {
				out = append(out, lesson)
				break
			}
		}
	}
	return out
}

// InjectionConfigFor builds the error-code filter for practicing a
// lesson: the codes the lesson itself teaches.
func (c *Catalog) InjectionConfigFor(number int) ([]errors.Code, bool) {
	lesson, ok := c.ByNumber(number)
	if !ok {
		return nil, false
	}
	codes := make([]errors.Code, 0, len(lesson.ErrorCodes))
	for _, raw := range lesson.ErrorCodes {
		if code, err := errors.Normalize(raw); err == nil {
			codes = append(codes, code)
		}
	}
	return codes, true
}

func (c *Catalog) sortByNumber() {
	sort.Slice(c.Lessons, func(i, j int) bool {
		return c.Lessons[i].Number < c.Lessons[j].Number
	})
}

// Default returns the built-in catalog shipped with the toolchain. It
// covers the implemented lexical/syntax codes; external catalogs replace
// it via the curriculum.catalog config key.
func Default() *Catalog {
	return &Catalog{Lessons: []Lesson{
		{
			Number:     1,
			Title:      "Strings and their quotes",
			ErrorCodes: []string{"E0002", "E0007"},
			Objectives: []string{
				"Close every string you open.",
				"Spot typographic quotes pasted from documents.",
			},
		},
		{
			Number:        2,
			Title:         "Declaring variables",
			ErrorCodes:    []string{"E0001", "E0008"},
			Objectives:    []string{"Write a complete let declaration: keyword, name, `=`, value."},
			Prerequisites: []int{1},
		},
		{
			Number:        3,
			Title:         "Escape sequences",
			ErrorCodes:    []string{"E0003"},
			Objectives:    []string{"Use only the escapes the language defines."},
			Prerequisites: []int{1},
		},
		{
			Number:        4,
			Title:         "Invisible and illegal characters",
			ErrorCodes:    []string{"E0004"},
			Objectives:    []string{"Find characters that do not belong, even when you cannot see them."},
			Prerequisites: []int{1},
		},
		{
			Number:        5,
			Title:         "Balancing blocks and delimiters",
			ErrorCodes:    []string{"E0005", "E0010"},
			Objectives:    []string{"Match every opener with its closer: `end`, `)`, `]`."},
			Prerequisites: []int{2},
		},
		{
			Number:        6,
			Title:         "Numbers and their limits",
			ErrorCodes:    []string{"E0006"},
			Objectives:    []string{"Understand why a literal can be too large to represent."},
			Prerequisites: []int{2},
		},
		{
			Number:        7,
			Title:         "Spelling out logic",
			ErrorCodes:    []string{"E0009"},
			Objectives:    []string{"Prefer `and`/`or` over `&&`/`||`."},
			Prerequisites: []int{2},
		},
	}}
}
