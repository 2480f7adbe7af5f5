// Package url validates and normalizes the URLs opened in a split.
package url

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrInvalidURL is returned for input that cannot be opened in a split window.
var ErrInvalidURL = errors.New("invalid url")

// internalPrefixes are host-internal pages accepted verbatim.
var internalPrefixes = []string{
	"chrome://",
	"edge://",
	"brave://",
	"about:",
}

var schemePrefix = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://`)

// NormalizeAndValidate turns user input into an absolute http(s) URL.
//
// Input without a scheme gets https:// prepended. Internal pages such as
// chrome://extensions and about:blank are returned unchanged. Any other
// explicit scheme is rejected and never reinterpreted as a hostname.
func NormalizeAndValidate(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidURL)
	}

	if IsInternal(trimmed) {
		return trimmed, nil
	}

	candidate := trimmed
	if !schemePrefix.MatchString(candidate) {
		// mailto:x@y.com parses as an opaque URL; host:port does not count.
		if u, err := url.Parse(trimmed); err == nil && u.Scheme != "" && u.Opaque != "" && !isPortPrefix(u.Opaque) {
			return "", fmt.Errorf("%w: %q: unsupported scheme %q", ErrInvalidURL, trimmed, u.Scheme)
		}
		candidate = "https://" + candidate
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidURL, trimmed, err)
	}

	switch parsed.Scheme {
	case "http", "https":
	default:
		return "", fmt.Errorf("%w: %q: unsupported scheme %q", ErrInvalidURL, trimmed, parsed.Scheme)
	}

	if parsed.Host == "" || parsed.Hostname() == "" {
		return "", fmt.Errorf("%w: %q: missing host", ErrInvalidURL, trimmed)
	}

	return parsed.String(), nil
}

// isPortPrefix reports whether opaque starts with a port number, optionally
// followed by a path, as in "localhost:3000/app".
func isPortPrefix(opaque string) bool {
	port, _, _ := strings.Cut(opaque, "/")
	if port == "" {
		return false
	}
	for _, r := range port {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsValid reports whether NormalizeAndValidate accepts the input.
func IsValid(input string) bool {
	_, err := NormalizeAndValidate(input)
	return err == nil
}

// IsInternal reports whether the input is a host-internal page.
func IsInternal(input string) bool {
	for _, prefix := range internalPrefixes {
		if strings.HasPrefix(input, prefix) {
			return true
		}
	}
	return false
}

// ExtractDomain extracts the normalized domain (host) from a URL string.
// Normalizes by stripping "www." prefix so youtube.com and www.youtube.com
// resolve to the same value.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
}
