package bitstream

import "go.uber.org/multierr"

// Tee is a Sink that duplicates every write to each of its sinks.
type Tee []Sink

var _ Sink = Tee(nil)

// NewTee returns a Sink writing to all of sinks in order.
func NewTee(sinks ...Sink) Tee {
	return Tee(sinks)
}

// WriteText writes s to every sink, stopping at the first failure.
func (t Tee) WriteText(s string) error {
	for _, sink := range t {
		if err := sink.WriteText(s); err != nil {
			return err
		}
	}

	return nil
}

// WriteBits writes bits to every sink, stopping at the first failure.
func (t Tee) WriteBits(bits string) error {
	for _, sink := range t {
		if err := sink.WriteBits(bits); err != nil {
			return err
		}
	}

	return nil
}

// Close closes every sink and returns all of their errors combined.
func (t Tee) Close() error {
	var err error
	for _, sink := range t {
		err = multierr.Append(err, sink.Close())
	}

	return err
}
