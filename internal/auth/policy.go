package auth

import (
	"net/http"
	"strings"
)

type Policy int

const (
	DenyAll Policy = iota
	PermitAll
	Authenticated
)

func (p Policy) String() string {
	switch p {
	case PermitAll:
		return "permit"
	case Authenticated:
		return "authenticated"
	default:
		return "deny"
	}
}

// AnyMethod matches every request method in a Rule.
const AnyMethod = "*"

// Rule applies Policy to requests whose method and path match. Pattern is
// a slash-separated path where "*" matches one segment and a trailing "**"
// matches any remainder, including nothing.
type Rule struct {
	Method  string
	Pattern string
	Policy  Policy
}

// Rules is evaluated in order; the first matching rule decides.
type Rules []Rule

// DefaultRules lets pre-flight requests and login through and requires an
// identity everywhere else.
func DefaultRules() Rules {
	return Rules{
		{Method: http.MethodOptions, Pattern: "/**", Policy: PermitAll},
		{Method: http.MethodPost, Pattern: "/auth/login", Policy: PermitAll},
		{Method: AnyMethod, Pattern: "/**", Policy: Authenticated},
	}
}

// Match returns the policy of the first matching rule, or DenyAll.
func (rs Rules) Match(method, path string) Policy {
	for _, r := range rs {
		if r.matches(method, path) {
			return r.Policy
		}
	}
	return DenyAll
}

func (r Rule) matches(method, path string) bool {
	if r.Method != AnyMethod && !strings.EqualFold(r.Method, method) {
		return false
	}
	return matchPath(splitPath(r.Pattern), splitPath(path))
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func matchPath(pattern, path []string) bool {
	for i, seg := range pattern {
		if seg == "**" {
			return i == len(pattern)-1
		}
		if i >= len(path) {
			return false
		}
		if seg != "*" && seg != path[i] {
			return false
		}
	}
	return len(pattern) == len(path)
}
