// Package search implements the keyword matching shared by the grep,
// remove, and run commands, plus the fallback free-text search.
package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/nickcat1/keepc/internal/store"
)

// Match returns the commands whose text or description contains every
// whitespace-separated keyword of pattern, compared case-insensitively.
// Keywords are ANDed together; within a keyword, command text and
// description are ORed. An empty pattern matches nothing. Results are
// sorted by command text for stable display.
func Match(pattern string, s *store.Store) []string {
	keywords := strings.Fields(pattern)
	if len(keywords) == 0 {
		return nil
	}

	var matches []string
	for cmd, desc := range s.Commands {
		if matchesAll(cmd, desc, keywords) {
			matches = append(matches, cmd)
		}
	}
	sort.Strings(matches)
	return matches
}

func matchesAll(cmd, desc string, keywords []string) bool {
	cmdLower := strings.ToLower(cmd)
	descLower := strings.ToLower(desc)
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if !strings.Contains(cmdLower, kw) && !strings.Contains(descLower, kw) {
			return false
		}
	}
	return true
}

// MatchGlob returns the commands whose text matches the given glob
// pattern. Unlike Match, descriptions are not consulted. An invalid
// pattern is an error rather than a silent miss.
func MatchGlob(pattern string, s *store.Store) ([]string, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	var matches []string
	for cmd := range s.Commands {
		if g.Match(cmd) {
			matches = append(matches, cmd)
		}
	}
	sort.Strings(matches)
	return matches, nil
}
