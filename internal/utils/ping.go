// ping.go
//
// Multi-step job application form state service.
// Cheap TCP reachability probes for the health check and the authorizer client.

package utils

import (
	"fmt"
	"net"
	"net/url"
	"time"
)

var schemePorts = map[string]string{
	"http":  "80",
	"https": "443",
}

// PingService dials the host behind serviceURL once. It proves reachability
// only; no request is sent.
func PingService(serviceURL string, timeout time.Duration) error {
	parsedURL, err := url.Parse(serviceURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	port := parsedURL.Port()
	if port == "" {
		if p, ok := schemePorts[parsedURL.Scheme]; ok {
			port = p
		} else {
			port = schemePorts["http"]
		}
	}

	address := net.JoinHostPort(parsedURL.Hostname(), port)
	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	return conn.Close()
}

// PingAuthorizer checks if the Authorizer service is reachable
func PingAuthorizer(authzURL string) error {
	return PingService(authzURL, 1500*time.Millisecond)
}
