package integrations

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a package or resource doesn't exist in the registry.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates an HTTP client with a standard timeout for registry requests.
// The timeout bounds how long a single enrichment call can stall the survey.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

var repoURLReplacer = strings.NewReplacer(
	"git@github.com:", "https://github.com/",
	"git://github.com/", "https://github.com/",
	"ssh://git@github.com/", "https://github.com/",
	"http://github.com/", "https://github.com/",
)

// NormalizeRepoURL converts the repository forms found in package.json to
// canonical HTTPS form. It understands git@, git://, ssh:// and git+ prefixes,
// the "github:owner/repo" and bare "owner/repo" shorthands, and strips .git
// suffixes and URL fragments. Returns empty string if raw is empty.
func NormalizeRepoURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, "git+")
	switch {
	case strings.HasPrefix(s, "github:"):
		s = "https://github.com/" + strings.TrimPrefix(s, "github:")
	case isShorthand(s):
		s = "https://github.com/" + s
	}
	s = repoURLReplacer.Replace(s)
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSuffix(s, ".git")
}

// isShorthand reports whether s is npm's "owner/repo" GitHub shorthand.
func isShorthand(s string) bool {
	if strings.Contains(s, ":") || strings.HasPrefix(s, "@") {
		return false
	}
	owner, repo, ok := strings.Cut(s, "/")
	return ok && owner != "" && repo != "" && !strings.Contains(repo, "/")
}
