package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	apperrors "drivedesk/pkg/errors"
	"drivedesk/pkg/httputil"
)

// timeoutWriter prevents the handler goroutine from writing after the
// deadline response has gone out.
type timeoutWriter struct {
	http.ResponseWriter
	mu       sync.Mutex
	timedOut bool
	written  bool
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut || tw.written {
		return
	}
	tw.written = true
	tw.ResponseWriter.WriteHeader(code)
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.written {
		tw.written = true
	}
	return tw.ResponseWriter.Write(b)
}

func RequestTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)

			tw := &timeoutWriter{ResponseWriter: w}

			done := make(chan struct{})
			go func() {
				next.ServeHTTP(tw, r)
				close(done)
			}()

			select {
			case <-done:
			case <-ctx.Done():
				tw.mu.Lock()
				tw.timedOut = true
				if !tw.written {
					_ = httputil.WriteError(w, apperrors.Timeout("Request timeout"))
					tw.written = true
				}
				tw.mu.Unlock()
			}
		})
	}
}
