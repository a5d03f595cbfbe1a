package tenant

import (
	"net/http"
	"regexp"
)

// DefaultHeader is the header protected requests carry the tenant code in.
const DefaultHeader = "X-Tenant-ID"

// MaxCodeLength caps identifier length at a DNS label. Longer values are
// rejected before any registry lookup happens.
const MaxCodeLength = 63

// codePattern accepts DNS-label style identifiers: alphanumeric start,
// hyphens and underscores allowed after. The registry is the authority on
// existence; this only filters obviously malformed input.
var codePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// ValidCode reports whether code is a syntactically plausible tenant code.
func ValidCode(code string) bool {
	if code == "" || len(code) > MaxCodeLength {
		return false
	}
	return codePattern.MatchString(code)
}

// Resolver extracts a tenant identifier from an HTTP request.
// Returns empty string if no identifier is found, error if extraction failed.
type Resolver func(r *http.Request) (string, error)

// NewHeaderResolver reads the tenant code from the given header,
// defaulting to X-Tenant-ID.
func NewHeaderResolver(header string) Resolver {
	if header == "" {
		header = DefaultHeader
	}
	return func(r *http.Request) (string, error) {
		return r.Header.Get(header), nil
	}
}

// NewContextResolver returns the code already bound to the request context,
// if any. Placed first in a composite resolver it lets an upstream component
// (an authenticated session, a test harness) win over the header.
func NewContextResolver() Resolver {
	return func(r *http.Request) (string, error) {
		code, _ := CodeFromContext(r.Context())
		return code, nil
	}
}

// NewCompositeResolver tries each resolver in order and returns the first
// non-empty identifier.
func NewCompositeResolver(resolvers ...Resolver) Resolver {
	return func(r *http.Request) (string, error) {
		for _, resolve := range resolvers {
			code, err := resolve(r)
			if err != nil {
				return "", err
			}
			if code != "" {
				return code, nil
			}
		}
		return "", nil
	}
}

// DefaultResolver resolves context first, then the X-Tenant-ID header.
func DefaultResolver() Resolver {
	return NewCompositeResolver(NewContextResolver(), NewHeaderResolver(DefaultHeader))
}
