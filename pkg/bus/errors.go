package bus

import "errors"

var (
	// ErrInvalidEnvelope indicates an envelope failed structural validation.
	ErrInvalidEnvelope = errors.New("invalid envelope")

	// ErrInvalidPayload indicates a payload failed typed decoding.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrInvalidTopic indicates a topic string does not match the grammar.
	ErrInvalidTopic = errors.New("invalid topic")

	// ErrPublisherStopped indicates a publish after the publisher shut down.
	ErrPublisherStopped = errors.New("publisher stopped")
)
