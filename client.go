// SPDX-License-Identifier: GPL-3.0-or-later

package avahi

import (
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// Well-known daemon coordinates on the system bus.
const (
	busName     = "org.freedesktop.Avahi"
	objectPath  = dbus.ObjectPath("/")
	serverIface = "org.freedesktop.Avahi.Server2"
)

// ErrReplySignature means that a daemon reply did not match the
// value-type signature expected for the invoked method.
var ErrReplySignature = errors.New("unexpected reply signature")

// ReplyError is the error returned when a daemon reply does not match
// the value-type signature expected for the invoked method. It carries
// the offending reply values for diagnostics and unwraps to
// [ErrReplySignature].
type ReplyError struct {
	// Method is the Server2 method that was invoked.
	Method string

	// Expected is the expected reply signature.
	Expected string

	// Body contains the reply values as received.
	Body []any
}

var _ error = &ReplyError{}

// Error implements error.
func (e *ReplyError) Error() string {
	return fmt.Sprintf("%s: %s: expected %q, got %q",
		e.Method, ErrReplySignature.Error(), e.Expected,
		dbus.SignatureOf(e.Body...).String())
}

// Unwrap allows matching [ErrReplySignature] with [errors.Is].
func (e *ReplyError) Unwrap() error {
	return ErrReplySignature
}

// caller is the subset of [dbus.BusObject] used by the [*Client].
type caller interface {
	Call(method string, flags dbus.Flags, args ...any) *dbus.Call
}

// Client invokes methods of the Avahi daemon over the bus.
//
// Each method issues a single request and waits for the single
// corresponding reply. The client keeps no state between calls and
// imposes no serialization: concurrent calls are correlated by the
// underlying bus connection.
//
// Construct using [NewClient] or [NewClientWithConn].
type Client struct {
	// object is the daemon's root object on the bus.
	object caller

	// closeConn releases the bus connection and is set only
	// when the client owns the connection.
	closeConn func() error
}

// NewClient connects to the system bus and returns a [*Client] that
// owns the new connection. Call [*Client.Close] to release it.
func NewClient() (*Client, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, err
	}
	client := NewClientWithConn(conn)
	client.closeConn = conn.Close
	return client, nil
}

// NewClientWithConn returns a [*Client] that borrows an existing bus
// connection. The caller retains ownership of the connection and
// [*Client.Close] will not close it.
func NewClientWithConn(conn *dbus.Conn) *Client {
	return &Client{
		object:    conn.Object(busName, objectPath),
		closeConn: nil,
	}
}

// Close releases the bus connection if the client owns it. The owned
// connection is closed exactly once regardless of how many times Close
// is invoked. Closing a client constructed with [NewClientWithConn]
// does nothing.
func (c *Client) Close() error {
	if c.closeConn == nil {
		return nil
	}
	closeConn := c.closeConn
	c.closeConn = nil
	return closeConn()
}

// call invokes a Server2 method and returns the reply values after
// verifying that they match the expected signature. A failure reported
// by the daemon propagates unchanged.
func (c *Client) call(method, signature string, args ...any) ([]any, error) {
	call := c.object.Call(serverIface+"."+method, 0, args...)
	if call.Err != nil {
		return nil, call.Err
	}
	if got := dbus.SignatureOf(call.Body...).String(); got != signature {
		return nil, &ReplyError{Method: method, Expected: signature, Body: call.Body}
	}
	return call.Body, nil
}

// callString invokes a Server2 method whose reply is a single string.
func (c *Client) callString(method string, args ...any) (string, error) {
	body, err := c.call(method, "s", args...)
	if err != nil {
		return "", err
	}
	return body[0].(string), nil
}
