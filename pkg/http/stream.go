package http

import (
	"context"
	"io"
)

// DoStreamRequest performs a request whose response body is consumed
// incrementally by the caller. On a 2xx status the body is returned unread
// and the caller owns closing it; on any other status the body is drained
// into an HTTPError.
//
// The client's overall request timeout does not apply here: a generation
// stream legitimately outlives it. Cancellation is driven by ctx instead.
func (c *Connector) DoStreamRequest(ctx context.Context, method, endpoint string, reqBody any, opts ...RequestOpt) (io.ReadCloser, error) {
	req, err := c.buildRequest(ctx, method, endpoint, reqBody, opts...)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")

	// Strip the per-request deadline, keep the transport-level timeouts.
	client := *c.httpClient
	client.Timeout = 0

	resp, err := client.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Message:    string(bodyBytes),
		}
	}

	return resp.Body, nil
}
