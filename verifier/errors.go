package verifier

import "github.com/pkg/errors"

// The verifier exposes a closed error set so callers can match on failure
// kind. Integrity failures additionally surface merkle.ErrInvalidProof and
// merkle.ErrInvalidProofLength; delivery failures surface
// exitrequests.ErrRequestsNotDelivered.
var (
	// ErrUnsupportedSlot means the claimed slot predates the supported window.
	// The caller must resubmit with a supported slot.
	ErrUnsupportedSlot = errors.New("verifier: slot precedes first supported slot")
	// ErrRootNotFound means the root source has no entry for the given
	// timestamp. Retryable with a valid or fresher timestamp.
	ErrRootNotFound = errors.New("verifier: block root not found for timestamp")
	// ErrInvalidBlockHeader means the supplied header does not hash to the
	// trusted root. Not retryable with the same inputs.
	ErrInvalidBlockHeader = errors.New("verifier: header does not match trusted root")
	// ErrHistoricalSummaryDoesNotExist means no appended historical summary
	// can cover the target slot given the recent slot.
	ErrHistoricalSummaryDoesNotExist = errors.New("verifier: historical summary does not exist for target slot")
	// ErrExitIsNotEligible means verification succeeded but no exit delay has
	// accrued yet at the proven slot. The caller should resubmit later.
	ErrExitIsNotEligible = errors.New("verifier: exit is not eligible on provable beacon block")
	// ErrExitRequestIndexOutOfRange means a witness points past the end of
	// the decoded exit request batch.
	ErrExitRequestIndexOutOfRange = errors.New("verifier: exit request index out of range")
)
