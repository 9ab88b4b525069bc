// internal/probe/probe.go
// Package probe resolves the expected transfer size of a remote resource
// through a metadata-only request.
package probe

import (
	"net/http"
	"strconv"
	"time"

	"github.com/boltdm/dlbench/internal/logging"
)

// requestTimeout bounds the metadata request.
const requestTimeout = 10 * time.Second

// httpClient follows redirects by default and is a package var so tests can
// substitute a client pointed at a local server transport.
var httpClient = &http.Client{Timeout: requestTimeout}

// Size issues a HEAD request for url and returns the declared Content-Length
// in bytes. The second return value is false when the request fails, times
// out, or the header is missing or unparseable; failures are logged and never
// propagate to the caller.
func Size(url string) (int64, bool) {
	req, err := http.NewRequest(http.MethodHead, url, nil)
	if err != nil {
		logging.LogEvent("HEAD request failed: %v", err)
		return 0, false
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		logging.LogEvent("HEAD request failed: %v", err)
		return 0, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logging.LogEvent("HEAD request failed: status %s", resp.Status)
		return 0, false
	}

	length := resp.Header.Get("Content-Length")
	size, err := strconv.ParseInt(length, 10, 64)
	if err != nil || size <= 0 {
		logging.LogEvent("HEAD response for %s carried no usable Content-Length", url)
		return 0, false
	}
	return size, true
}
