// Package resolve looks up the current A/AAAA records of a domain
// after an update run. The lookup is purely informational and never
// influences the exit code.
package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"jabberwocky238/jwddns/types"

	"github.com/miekg/dns"
)

// Config holds configuration for record lookups.
type Config struct {
	ResolvConf string        // Path to resolv.conf for discovering the system resolver
	Fallback   string        // Resolver used when resolv.conf is unusable
	Timeout    time.Duration // Timeout for each DNS query
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ResolvConf: "/etc/resolv.conf",
		Fallback:   "1.1.1.1:53",
		Timeout:    5 * time.Second,
	}
}

// Resolver queries the system resolver for address records.
type Resolver struct {
	servers []string
	client  *dns.Client
}

// New creates a Resolver. Nameservers are read from resolv.conf; when
// that fails the fallback server is used.
func New(cfg Config) *Resolver {
	servers := []string{cfg.Fallback}
	if cc, err := dns.ClientConfigFromFile(cfg.ResolvConf); err == nil && len(cc.Servers) > 0 {
		servers = servers[:0]
		for _, s := range cc.Servers {
			servers = append(servers, fmt.Sprintf("%s:%s", s, cc.Port))
		}
	}
	return &Resolver{
		servers: servers,
		client: &dns.Client{
			Net:     "udp",
			Timeout: cfg.Timeout,
		},
	}
}

// Lookup returns the address values currently served for domain in the
// given family (A for IPv4, AAAA for IPv6). Servers are tried in
// order; the first usable answer wins.
func (r *Resolver) Lookup(ctx context.Context, domain string, family types.Family) ([]string, error) {
	qtype := dns.TypeA
	if family == types.FamilyIPv6 {
		qtype = dns.TypeAAAA
	}

	query := new(dns.Msg)
	query.SetQuestion(dns.Fqdn(domain), qtype)
	query.RecursionDesired = true

	var lastErr error
	for _, server := range r.servers {
		resp, _, err := r.client.ExchangeContext(ctx, query, server)
		if err != nil {
			slog.Debug("lookup failed, trying next server",
				"server", server,
				"domain", domain,
				"error", err,
			)
			lastErr = err
			continue
		}
		if resp.Rcode != dns.RcodeSuccess {
			return nil, fmt.Errorf("resolver %s: %s", server, dns.RcodeToString[resp.Rcode])
		}
		return answerValues(resp.Answer), nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("all resolvers failed: %w", lastErr)
	}
	return nil, fmt.Errorf("no resolvers configured")
}

// answerValues extracts the address strings from A and AAAA answer
// records. Other RR types (e.g. CNAMEs in the chain) are skipped.
func answerValues(rrs []dns.RR) []string {
	var values []string
	for _, rr := range rrs {
		switch v := rr.(type) {
		case *dns.A:
			values = append(values, v.A.String())
		case *dns.AAAA:
			values = append(values, v.AAAA.String())
		}
	}
	return values
}
