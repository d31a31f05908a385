// Package types defines the core value types, exit codes and sentinel
// errors used throughout the jwddns module.
package types

import "errors"

// Family represents the IP address family a request is bound to.
type Family string

const (
	FamilyIPv4 Family = "IPv4"
	FamilyIPv6 Family = "IPv6"
)

// Network returns the Go dial network that restricts connections to
// this address family.
func (f Family) Network() string {
	if f == FamilyIPv6 {
		return "tcp6"
	}
	return "tcp4"
}

// DomainEntry is one configured domain with its pre-authorized update
// URLs. Domain is an informational label and never drives request
// logic. Either URL may be empty; an entry with both empty produces no
// requests.
type DomainEntry struct {
	Domain      string `toml:"domain" yaml:"domain"`             // Hostname label (e.g., "example.ydns.eu")
	UpdateURL   string `toml:"update_url" yaml:"update_url"`     // IPv4 (A record) update URL
	UpdateURLV6 string `toml:"update_url_v6" yaml:"update_url_v6"` // IPv6 (AAAA record) update URL
}

// Label returns the display name for the entry, or a placeholder when
// no domain was configured.
func (e DomainEntry) Label() string {
	if e.Domain == "" {
		return "<undefined>"
	}
	return e.Domain
}

// HasUpdateURL reports whether the entry has at least one update URL
// configured.
func (e DomainEntry) HasUpdateURL() bool {
	return e.UpdateURL != "" || e.UpdateURLV6 != ""
}

// OutcomeKind classifies the result of a single update request.
type OutcomeKind int

const (
	// OutcomeSuccess means the server answered with a 2xx status.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeHTTPError means the server answered with a non-2xx status.
	OutcomeHTTPError
	// OutcomeConnectionError means no HTTP status line was ever
	// received (DNS, TCP, TLS or timeout failure).
	OutcomeConnectionError
)

// RequestOutcome is the immutable result of one update request
// attempt. StatusCode is zero for connection errors; Cause is nil for
// everything else.
type RequestOutcome struct {
	Kind       OutcomeKind
	StatusCode int
	Cause      error
}

// Process exit codes. Codes 1-3 are reserved for configuration-phase
// failures and are never produced by outcome aggregation.
const (
	ExitSuccess         = 0 // all updates succeeded, or HTTP errors under lax mode
	ExitConfigNotFound  = 1 // config file not found
	ExitConfigParse     = 2 // config file could not be read or parsed
	ExitNoDomains       = 3 // config file contains no domain entries
	ExitUpdateFailed    = 4 // strict mode and at least one non-2xx response
	ExitConnectionError = 5 // at least one connection error, any mode
)

// Sentinel errors for configuration handling.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrNoDomains      = errors.New("config contains no domain entries")
)
