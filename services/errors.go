package services

import "errors"

// Failure classes the controllers map onto HTTP statuses. Anything
// else coming out of a service is a downstream provider error.
var (
	// ErrTranscription wraps any speech-to-text failure, including an
	// error status reported by the provider.
	ErrTranscription = errors.New("speech recognition failed")

	// ErrInvalidModelOutput means the estimator did not answer with a
	// bare integer. No retry is attempted.
	ErrInvalidModelOutput = errors.New("model did not answer with an integer")

	// ErrMalformedModelOutput means the extraction reply failed to
	// parse as a list of food names.
	ErrMalformedModelOutput = errors.New("model output failed to parse")
)
