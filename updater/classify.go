// Package updater implements the core of jwddns: issuing one HTTP GET
// per configured update URL bound to a specific address family,
// classifying each result, and folding all results into a single
// process exit code.
package updater

import "jabberwocky238/jwddns/types"

// Classify maps the raw result of one update attempt to a
// RequestOutcome. A transport-level failure (err != nil) is a
// connection error regardless of status; any status in [200,299] is a
// success; every other status, redirects included, is an HTTP error.
func Classify(status int, err error) types.RequestOutcome {
	if err != nil {
		return types.RequestOutcome{Kind: types.OutcomeConnectionError, Cause: err}
	}
	if status >= 200 && status <= 299 {
		return types.RequestOutcome{Kind: types.OutcomeSuccess, StatusCode: status}
	}
	return types.RequestOutcome{Kind: types.OutcomeHTTPError, StatusCode: status}
}
