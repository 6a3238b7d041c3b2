package memdom

import (
	"fmt"
	"strings"
)

// The selector engine supports the subset the component layer needs:
// tag, #id and .class simple selectors, compounds of those
// ("button.primary"), and the descendant combinator (whitespace).

// simpleSelector is one compound step, e.g. "input.wide#name".
type simpleSelector struct {
	tag     string
	id      string
	classes []string
}

// selector is a descendant chain of simple selectors, rightmost last.
type selector struct {
	steps []simpleSelector
}

func parseSelector(raw string) (selector, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return selector{}, fmt.Errorf("empty selector")
	}
	var sel selector
	for _, part := range strings.Fields(raw) {
		step, err := parseSimple(part)
		if err != nil {
			return selector{}, err
		}
		sel.steps = append(sel.steps, step)
	}
	return sel, nil
}

func parseSimple(part string) (simpleSelector, error) {
	var s simpleSelector
	rest := part
	for rest != "" {
		kind := byte(0)
		if rest[0] == '#' || rest[0] == '.' {
			kind = rest[0]
			rest = rest[1:]
		}
		end := strings.IndexAny(rest, "#.")
		var token string
		if end == -1 {
			token, rest = rest, ""
		} else {
			token, rest = rest[:end], rest[end:]
		}
		if token == "" {
			return simpleSelector{}, fmt.Errorf("invalid selector part %q", part)
		}
		switch kind {
		case '#':
			s.id = token
		case '.':
			s.classes = append(s.classes, token)
		default:
			s.tag = strings.ToLower(token)
		}
	}
	return s, nil
}

func (s simpleSelector) matches(n *node) bool {
	if s.tag != "" && n.tag != s.tag {
		return false
	}
	if s.id != "" {
		id, ok := n.attrs["id"]
		if !ok || id != s.id {
			return false
		}
	}
	for _, c := range s.classes {
		if !n.hasClass(c) {
			return false
		}
	}
	return true
}

// matches reports whether n satisfies the full selector with every
// ancestor requirement resolved inside the subtree rooted at scope.
func (sel selector) matches(n *node, scope *node) bool {
	if len(sel.steps) == 0 {
		return false
	}
	last := sel.steps[len(sel.steps)-1]
	if !last.matches(n) {
		return false
	}
	// Walk remaining steps right to left, matching each against some
	// strict ancestor of the previous match, stopping at the scope root.
	anc := n.parent
	for i := len(sel.steps) - 2; i >= 0; i-- {
		step := sel.steps[i]
		for {
			if anc == nil || anc == scope {
				return false
			}
			if step.matches(anc) {
				anc = anc.parent
				break
			}
			anc = anc.parent
		}
	}
	return true
}
