package client

import (
	"bufio"
	"context"
	"log"
	"net/http"
	"sync"
)

// doneSentinel terminates the progress stream. It is a control line, never
// a message, and is never delivered to consumers.
const doneSentinel = "DONE"

// ProgressStream is a one-way stream of progress lines from the server.
// Lines arrive on Lines() in server order; the channel is closed when the
// server sends the terminating sentinel, the stream is closed locally, or
// the connection drops.
type ProgressStream struct {
	lines  chan string
	cancel context.CancelFunc
	once   sync.Once
}

// OpenProgress connects to the server's progress stream. The returned
// stream must be closed by the caller unless the channel already closed
// itself; Close is idempotent either way.
func (c *Client) OpenProgress(ctx context.Context) (*ProgressStream, error) {
	ctx, cancel := context.WithCancel(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/progress", nil)
	if err != nil {
		cancel()
		return nil, err
	}

	resp, err := c.streaming.Do(req)
	if err != nil {
		cancel()
		return nil, err
	}

	stream := &ProgressStream{
		lines:  make(chan string),
		cancel: cancel,
	}

	go func() {
		defer close(stream.lines)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			if line == doneSentinel {
				return
			}
			select {
			case stream.lines <- line:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil && ctx.Err() == nil {
			log.Printf("Progress stream ended: %v", err)
		}
	}()

	return stream, nil
}

// Lines returns the channel progress messages arrive on
func (s *ProgressStream) Lines() <-chan string {
	return s.lines
}

// Close tears down the stream. Safe to call multiple times and after the
// channel has already closed.
func (s *ProgressStream) Close() {
	s.once.Do(s.cancel)
}
