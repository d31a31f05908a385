package updater

import "jabberwocky238/jwddns/types"

// Mode selects how HTTP-level failures affect the exit code.
type Mode int

const (
	// ModeLax ignores non-2xx responses for exit-code purposes.
	ModeLax Mode = iota
	// ModeStrict turns non-2xx responses into a failing exit code.
	ModeStrict
)

// Fold reduces all request outcomes of a run to the process exit code.
// The reduction is an OR over two flags and is therefore independent
// of outcome order. Connection errors dominate HTTP errors; HTTP
// errors only count in strict mode; an empty outcome set is a success.
// Configuration-phase codes (1-3) are never produced here.
func Fold(outcomes []types.RequestOutcome, mode Mode) int {
	var hadHTTPError, hadConnectionError bool
	for _, o := range outcomes {
		switch o.Kind {
		case types.OutcomeHTTPError:
			hadHTTPError = true
		case types.OutcomeConnectionError:
			hadConnectionError = true
		}
	}

	if hadConnectionError {
		return types.ExitConnectionError
	}
	if hadHTTPError && mode == ModeStrict {
		return types.ExitUpdateFailed
	}
	return types.ExitSuccess
}
