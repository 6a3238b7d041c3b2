package router

import (
	"strings"

	"github.com/vcrobe/umbra/runtime"
)

// ViewFactory builds the view for a resolved path. Params holds the
// values extracted from {param} segments of the matched pattern.
// A factory that cannot construct its view returns the error; the
// router propagates it to the Navigate caller.
type ViewFactory func(params map[string]string) (runtime.View, error)

// Route pairs a path pattern with the factory for its view. Patterns
// may contain parameters in curly braces, e.g. "/blog/{year}".
type Route struct {
	Pattern string
	Factory ViewFactory
}

// match reports whether path satisfies the route's pattern and returns
// the extracted parameters. Trailing slashes are ignored on both sides.
func (rt Route) match(path string) (map[string]string, bool) {
	pattern := normalize(rt.Pattern)
	path = normalize(path)

	if pattern == path {
		return map[string]string{}, true
	}

	patternParts := splitPath(pattern)
	pathParts := splitPath(path)
	if len(patternParts) != len(pathParts) {
		return nil, false
	}

	params := make(map[string]string)
	for i, part := range patternParts {
		if isParam(part) {
			params[strings.Trim(part, "{}")] = pathParts[i]
			continue
		}
		if part != pathParts[i] {
			return nil, false
		}
	}
	return params, true
}

func normalize(p string) string {
	p = strings.TrimSuffix(strings.TrimSpace(p), "/")
	if p == "" {
		return "/"
	}
	return p
}

func splitPath(p string) []string {
	return strings.Split(strings.Trim(p, "/"), "/")
}

func isParam(part string) bool {
	return strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}")
}
