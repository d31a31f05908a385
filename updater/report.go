package updater

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"jabberwocky238/jwddns/types"
)

// Reporter receives per-request outcomes for display. Reporting is a
// side effect only; it never influences aggregation.
type Reporter interface {
	// Success is called for every 2xx outcome.
	Success(entry types.DomainEntry, family types.Family, outcome types.RequestOutcome)
	// Failure is called for every HTTP error or connection error outcome.
	Failure(entry types.DomainEntry, family types.Family, outcome types.RequestOutcome)
	// Skipped is called for an entry with no update URLs configured.
	Skipped(entry types.DomainEntry)
}

// StreamReporter writes success lines to an output stream (stdout in
// production, only when verbose) and failures through a slog.Logger
// bound to stderr. Failures are always reported regardless of
// verbosity.
type StreamReporter struct {
	out     io.Writer
	log     *slog.Logger
	verbose bool
}

// NewStreamReporter creates a StreamReporter.
func NewStreamReporter(out io.Writer, log *slog.Logger, verbose bool) *StreamReporter {
	return &StreamReporter{out: out, log: log, verbose: verbose}
}

// Success prints one line per successful update when verbose is set.
func (r *StreamReporter) Success(entry types.DomainEntry, family types.Family, outcome types.RequestOutcome) {
	if !r.verbose {
		return
	}
	fmt.Fprintf(r.out, "Updated %s (%s) successfully.\n", entry.Label(), family)
}

// Failure logs one line per failed update, with a hint for the status
// codes the update service is known to answer with.
func (r *StreamReporter) Failure(entry types.DomainEntry, family types.Family, outcome types.RequestOutcome) {
	switch {
	case outcome.Kind == types.OutcomeConnectionError:
		r.log.Error("connection error",
			"domain", entry.Label(),
			"family", family,
			"error", outcome.Cause,
		)
	case outcome.StatusCode == http.StatusNotFound:
		r.log.Error("update URL is invalid, check your configuration",
			"domain", entry.Label(),
			"family", family,
			"status", outcome.StatusCode,
		)
	case outcome.StatusCode == http.StatusBadRequest:
		r.log.Error(fmt.Sprintf("server rejected the request, you may not have a public %s address", family),
			"domain", entry.Label(),
			"family", family,
			"status", outcome.StatusCode,
		)
	default:
		r.log.Error("unexpected HTTP status",
			"domain", entry.Label(),
			"family", family,
			"status", outcome.StatusCode,
		)
	}
}

// Skipped notes an entry that produced no requests.
func (r *StreamReporter) Skipped(entry types.DomainEntry) {
	r.log.Warn("no update URLs configured, updates not attempted", "domain", entry.Label())
}
