package utils

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

var (
	ErrInvalidIP  = errors.New("invalid IP address or hostname given")
	ErrInvalidURL = errors.New("invalid endpoint URL given")
)

// SanitizeAddr trims leading protocol scheme and port from the given
// IP address or hostname if present.
func SanitizeAddr(addr string) (string, error) {
	original := addr
	addr = strings.TrimPrefix(addr, "http://")
	addr = strings.TrimPrefix(addr, "https://")
	addr = strings.TrimPrefix(addr, "tcp://")
	addr = strings.TrimSuffix(addr, "/")
	addr = strings.Split(addr, ":")[0]
	if addr == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidIP, original)
	}
	return addr, nil
}

// ValidateAddr sanitizes the given address and verifies that it is a valid IP or hostname. The
// sanitized address is returned.
func ValidateAddr(addr string) (string, error) {
	addr, err := SanitizeAddr(addr)
	if err != nil {
		return addr, err
	}

	ip := net.ParseIP(addr)
	if ip != nil {
		return addr, nil
	}

	resolved, err := net.ResolveIPAddr("ip4", addr)
	if err != nil {
		return addr, err
	}
	return resolved.String(), nil
}

// ValidateURL checks that raw is an absolute URL of a JSON-RPC endpoint
// reachable over HTTP or websockets.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidURL, raw, err)
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return fmt.Errorf("%w: %s: unsupported scheme %q", ErrInvalidURL, raw, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: %s: missing host", ErrInvalidURL, raw)
	}
	return nil
}
