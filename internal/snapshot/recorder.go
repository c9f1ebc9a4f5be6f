package snapshot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrRecorderClosed is returned by Record after Close.
var ErrRecorderClosed = errors.New("snapshot: recorder closed")

// Recorder appends every Nth frame to a stream of msgpack values.
//
// Thread-safe: Record and Close may be called from different goroutines.
type Recorder struct {
	mu      sync.Mutex
	buf     *bufio.Writer
	closer  io.Closer
	enc     *msgpack.Encoder
	everyN  uint64
	written int
	closed  bool
}

// NewRecorder writes frames to w. everyN <= 1 records every frame.
// If w is an io.Closer it is closed by Close.
func NewRecorder(w io.Writer, everyN int) *Recorder {
	buf := bufio.NewWriter(w)
	r := &Recorder{
		buf:    buf,
		enc:    msgpack.NewEncoder(buf),
		everyN: uint64(max(everyN, 1)),
	}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}
	return r
}

// CreateRecorder creates (or truncates) the file at path and records into it.
func CreateRecorder(path string, everyN int) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating recorder file %s: %w", path, err)
	}
	return NewRecorder(f, everyN), nil
}

// Record encodes f if its tick is a multiple of everyN.
func (r *Recorder) Record(f Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRecorderClosed
	}
	if f.Tick%r.everyN != 0 {
		return nil
	}
	if err := r.enc.Encode(&f); err != nil {
		return fmt.Errorf("encoding frame %d: %w", f.Tick, err)
	}
	r.written++
	return nil
}

// Written returns the number of recorded frames.
func (r *Recorder) Written() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.written
}

// Close flushes buffered frames and closes the underlying writer. Idempotent.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	if err := r.buf.Flush(); err != nil {
		return fmt.Errorf("flushing recorder: %w", err)
	}
	if r.closer != nil {
		if err := r.closer.Close(); err != nil {
			return fmt.Errorf("closing recorder: %w", err)
		}
	}
	return nil
}

// ReadFrames decodes every frame from rd until EOF.
func ReadFrames(rd io.Reader) ([]Frame, error) {
	dec := msgpack.NewDecoder(bufio.NewReader(rd))

	var frames []Frame
	for {
		var f Frame
		err := dec.Decode(&f)
		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return frames, fmt.Errorf("decoding frame %d: %w", len(frames), err)
		}
		frames = append(frames, f)
	}
}
