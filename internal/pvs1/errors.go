package pvs1

import "errors"

// Error taxonomy for analyzer failures. Analyzers return errors wrapped
// around one of these sentinels; the engine catches all of them at its
// boundary and converts them into a failed Result, so Evaluate never
// propagates analyzer errors to callers.
var (
	// ErrMissingData marks a required annotation field that is absent
	// (no strand, no exons, unparseable termination position). Fatal to
	// the current evaluation, never defaulted.
	ErrMissingData = errors.New("missing annotation data")

	// ErrInvalidRange marks a computed genomic interval with end before
	// start. Fatal.
	ErrInvalidRange = errors.New("invalid genomic range")

	// ErrUpstreamService marks a failed or malformed response from an
	// annotation or frequency source after retries were exhausted.
	ErrUpstreamService = errors.New("upstream annotation service failed")

	// ErrNoTranscript is returned by transcript selection when no
	// variant transcript pairs with a gene transcript.
	ErrNoTranscript = errors.New("no transcript for variant")
)
