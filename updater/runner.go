package updater

import (
	"context"

	"jabberwocky238/jwddns/types"
)

// Executor performs one update request. *Client is the production
// implementation; tests substitute fakes.
type Executor interface {
	Update(ctx context.Context, url string, family types.Family) types.RequestOutcome
}

// Runner drives one full update run: every present update URL of every
// entry is requested exactly once, failures never abort the remaining
// work, and every outcome is both reported and collected.
type Runner struct {
	Executor Executor
	Reporter Reporter
}

// Run processes all entries in order and returns the collected
// outcomes for aggregation. The v4 and v6 requests of one entry are
// independent: each is attempted iff its URL is configured, and the
// outcome of one never alters the other.
func (r *Runner) Run(ctx context.Context, entries []types.DomainEntry) []types.RequestOutcome {
	var outcomes []types.RequestOutcome

	for _, entry := range entries {
		if !entry.HasUpdateURL() {
			r.Reporter.Skipped(entry)
			continue
		}
		if entry.UpdateURL != "" {
			outcomes = append(outcomes, r.update(ctx, entry, entry.UpdateURL, types.FamilyIPv4))
		}
		if entry.UpdateURLV6 != "" {
			outcomes = append(outcomes, r.update(ctx, entry, entry.UpdateURLV6, types.FamilyIPv6))
		}
	}

	return outcomes
}

func (r *Runner) update(ctx context.Context, entry types.DomainEntry, url string, family types.Family) types.RequestOutcome {
	outcome := r.Executor.Update(ctx, url, family)
	if outcome.Kind == types.OutcomeSuccess {
		r.Reporter.Success(entry, family, outcome)
	} else {
		r.Reporter.Failure(entry, family, outcome)
	}
	return outcome
}
