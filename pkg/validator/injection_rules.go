package validator

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// DefaultDangerousPatterns is the built-in deny-list of markup and script
// injection markers. Patterns are matched case-insensitively.
//
// A deny-list is not an HTML or JavaScript parser and cannot be complete; it
// backs up the per-field character allow-lists rather than replacing them.
var DefaultDangerousPatterns = []string{
	`<script`,
	`<iframe`,
	`<object`,
	`<embed`,
	`javascript:`,
	`data:`,
	`on\w+=`,
}

// PatternSet is a case-insensitive regular expression deny-list.
// It is safe for concurrent use; patterns may be added while matching.
type PatternSet struct {
	mu       sync.RWMutex
	patterns []*regexp.Regexp
}

// NewPatternSet compiles the given patterns into a set.
func NewPatternSet(patterns ...string) (*PatternSet, error) {
	s := &PatternSet{}
	if err := s.Add(patterns...); err != nil {
		return nil, err
	}
	return s, nil
}

// MustPatternSet is like NewPatternSet but panics on an invalid pattern.
func MustPatternSet(patterns ...string) *PatternSet {
	s, err := NewPatternSet(patterns...)
	if err != nil {
		panic(err)
	}
	return s
}

// DefaultPatternSet returns a fresh set holding DefaultDangerousPatterns.
func DefaultPatternSet() *PatternSet {
	return MustPatternSet(DefaultDangerousPatterns...)
}

// Add compiles and appends patterns. Either all patterns are added or none.
func (s *PatternSet) Add(patterns ...string) error {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		if strings.TrimSpace(p) == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidPattern, p, err)
		}
		compiled = append(compiled, re)
	}

	s.mu.Lock()
	s.patterns = append(s.patterns, compiled...)
	s.mu.Unlock()
	return nil
}

// Len returns the number of patterns in the set.
func (s *PatternSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.patterns)
}

// Match reports whether any pattern matches value. The value is also checked
// in NFKC form so full-width and other compatibility look-alikes of "<" or ":"
// are caught.
func (s *PatternSet) Match(value string) bool {
	if value == "" {
		return false
	}

	folded := norm.NFKC.String(value)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, re := range s.patterns {
		if re.MatchString(value) {
			return true
		}
		if folded != value && re.MatchString(folded) {
			return true
		}
	}
	return false
}

// patternFile is the on-disk layout of a deny-list file:
//
//	patterns:
//	  - "<svg"
//	  - "vbscript:"
type patternFile struct {
	Patterns []string `yaml:"patterns"`
}

// LoadPatternSet reads a YAML pattern file and returns a set containing the
// default patterns followed by the file's patterns.
func LoadPatternSet(r io.Reader) (*PatternSet, error) {
	var file patternFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyPatternSet
		}
		return nil, errors.Join(ErrFailedToParsePatterns, err)
	}
	if len(file.Patterns) == 0 {
		return nil, ErrEmptyPatternSet
	}

	set := DefaultPatternSet()
	if err := set.Add(file.Patterns...); err != nil {
		return nil, err
	}
	return set, nil
}

// NoDangerousPattern validates that value does not match any pattern in set.
// A nil set falls back to the default deny-list.
func NoDangerousPattern(field, value string, set *PatternSet) Rule {
	if set == nil {
		set = defaultSet
	}
	return Rule{
		Check: func() bool {
			return !set.Match(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "contains forbidden content",
			TranslationKey: "validation.dangerous_pattern",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

var defaultSet = DefaultPatternSet()
