package database

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/jordanlanch/repcoach/pkg/logger"
)

var testDBSeq atomic.Int64

// NewTestClient returns a bootstrapped in-memory sqlite client that is
// closed when the test ends. Every call gets its own database.
func NewTestClient(t testing.TB) *Client {
	t.Helper()

	url := fmt.Sprintf("file:repcoach_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	c, err := NewClient(context.Background(), url, Options{Bootstrap: true, Logger: logger.Discard()})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}
