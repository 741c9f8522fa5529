// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package authority

import (
	"context"
	"fmt"

	"github.com/sundial-foundation/sundial/lib/service"
)

// checkAction is the action name on the policy service socket.
const checkAction = "check-authorization"

// Client is the socket-backed Authority. The policy service speaks the
// same one-request-per-connection CBOR protocol as sundiald itself.
type Client struct {
	socket *service.Client
}

// NewClient returns an Authority backed by the policy service socket
// at socketPath.
func NewClient(socketPath string) *Client {
	return &Client{socket: service.NewClient(socketPath)}
}

// CheckAuthorization sends the subject, action, and an empty detail
// mapping to the policy service. The interactive flag requests
// user-interaction escalation.
func (c *Client) CheckAuthorization(ctx context.Context, subject Subject, actionID string, interactive bool) (Decision, error) {
	fields := map[string]any{
		"subject":     subject,
		"action_id":   actionID,
		"details":     map[string]string{},
		"interactive": interactive,
	}

	var decision Decision
	if err := c.socket.Call(ctx, checkAction, fields, &decision); err != nil {
		return Decision{}, fmt.Errorf("policy authority: %w", err)
	}
	return decision, nil
}
