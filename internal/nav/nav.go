// Package nav provides the in-process navigation model: a current location
// (path plus query string) with push/replace/back history semantics, and route
// pattern matching for paths like /items/{id}. The query string of the current
// location is the authoritative serialized form of catalog filter state.
package nav

import (
	"net/url"
	"strings"
)

// Location is one entry in the navigation history.
type Location struct {
	Path  string
	Query url.Values
}

// String serializes the location back to a path with an optional query string.
func (l Location) String() string {
	if len(l.Query) == 0 {
		return l.Path
	}
	return l.Path + "?" + l.Query.Encode()
}

// ParsePath splits a target like "/items?search=camera&page=2" into a Location.
// A malformed query string yields an empty query rather than an error.
func ParsePath(target string) Location {
	path, rawQuery, _ := strings.Cut(target, "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	return Location{Path: path, Query: query}
}

// Navigator tracks the navigation history. It is not safe for concurrent use;
// navigation happens on the single page-driving goroutine.
type Navigator struct {
	stack []Location
}

// New creates a Navigator positioned at the initial target.
func New(initial string) *Navigator {
	return &Navigator{stack: []Location{ParsePath(initial)}}
}

// Location returns the current location.
func (n *Navigator) Location() Location {
	return n.stack[len(n.stack)-1]
}

// Go pushes a new location onto the history.
func (n *Navigator) Go(target string) {
	n.stack = append(n.stack, ParsePath(target))
}

// Replace swaps the current location without growing the history, so
// back-navigation cannot return to the replaced entry.
func (n *Navigator) Replace(target string) {
	n.stack[len(n.stack)-1] = ParsePath(target)
}

// SetQuery pushes the current path with a new query string.
func (n *Navigator) SetQuery(query url.Values) {
	n.stack = append(n.stack, Location{Path: n.Location().Path, Query: query})
}

// Back pops the current location. It reports whether there was a previous
// entry to return to.
func (n *Navigator) Back() bool {
	if len(n.stack) < 2 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

// Depth returns the number of history entries.
func (n *Navigator) Depth() int {
	return len(n.stack)
}

// Match reports whether path matches pattern, where pattern segments of the
// form {name} capture the corresponding path segment. On a match it returns
// the captured parameters.
func Match(pattern, path string) (map[string]string, bool) {
	patternParts := splitPath(pattern)
	pathParts := splitPath(path)
	if len(patternParts) != len(pathParts) {
		return nil, false
	}

	params := map[string]string{}
	for i, part := range patternParts {
		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			if pathParts[i] == "" {
				return nil, false
			}
			params[part[1:len(part)-1]] = pathParts[i]
			continue
		}
		if part != pathParts[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(p string) []string {
	return strings.Split(strings.Trim(p, "/"), "/")
}
