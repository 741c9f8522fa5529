// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/sundial-foundation/sundial/lib/codec"
	"github.com/sundial-foundation/sundial/lib/ipc"
)

// dialTimeout is the maximum time to wait for a connection to the
// daemon socket. This covers only the connect phase.
const dialTimeout = 5 * time.Second

// responseReadTimeout is how long the client waits for the server to
// send a response after writing the request. Generous enough to cover
// an interactive authorization round-trip on the server side.
const responseReadTimeout = 120 * time.Second

// maxResponseSize is the maximum size of a single CBOR response. The
// largest response is the timezone list, a few tens of kilobytes.
const maxResponseSize = 1024 * 1024

// Client sends CBOR requests to the sundiald socket. Each Call opens a
// new connection (matching the server's one-request-per-connection
// model), sends the request, reads the response, and closes.
type Client struct {
	socketPath string
}

// NewClient creates a client for the daemon socket at socketPath.
func NewClient(socketPath string) *Client {
	return &Client{socketPath: socketPath}
}

// Call sends a request for the given action and decodes the response.
//
// The fields parameter may contain any action-specific request fields;
// the client adds "action" itself. Pass nil for actions that take no
// parameters. Struct values with cbor tags work as well as maps.
//
// On success, if result is non-nil and the response contains data, the
// data is CBOR-decoded into result. On failure the server's error is
// returned as an *ipc.Error carrying the wire code. Connection and
// encoding errors are returned as plain errors.
func (c *Client) Call(ctx context.Context, action string, fields map[string]any, result any) error {
	request := make(map[string]any, len(fields)+1)
	for key, value := range fields {
		request[key] = value
	}
	request["action"] = action

	response, err := c.send(ctx, request)
	if err != nil {
		return fmt.Errorf("calling %q on %s: %w", action, c.socketPath, err)
	}

	if !response.OK {
		code := response.Code
		if code == "" {
			code = ipc.CodeInternal
		}
		return &ipc.Error{Code: code, Message: response.Error}
	}

	if result != nil && len(response.Data) > 0 {
		if err := codec.Unmarshal(response.Data, result); err != nil {
			return fmt.Errorf("decoding response data for %q: %w", action, err)
		}
	}

	return nil
}

// send connects to the socket, writes the request, and reads the
// response. Each call creates a new connection.
func (c *Client) send(ctx context.Context, request any) (*Response, error) {
	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return nil, fmt.Errorf("connecting: %w", err)
	}
	defer conn.Close()

	if err := codec.NewEncoder(conn).Encode(request); err != nil {
		return nil, fmt.Errorf("writing request: %w", err)
	}

	// Half-close the write side so the server's read side sees EOF
	// cleanly. CBOR is self-delimiting so this is a courtesy, not a
	// framing requirement.
	if unixConn, ok := conn.(*net.UnixConn); ok {
		unixConn.CloseWrite()
	}

	conn.SetReadDeadline(time.Now().Add(responseReadTimeout))
	var response Response
	if err := codec.NewDecoder(io.LimitReader(conn, maxResponseSize)).Decode(&response); err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return &response, nil
}
