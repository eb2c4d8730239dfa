package client

import (
	"context"
	"net"

	"go.uber.org/zap"

	"github.com/stellarsql/stellar/protocol"
)

// Conn wraps one TCP connection to a StellarSQL server. The session
// protocol is strict lockstep: one encoded line out, one bounded reply
// back. All methods block and must be driven from a single goroutine.
type Conn struct {
	conn net.Conn
	log  *zap.Logger
}

// Dial makes a single connection attempt to addr. There is no retry: a
// failed dial is fatal to the session. The context only covers the dial
// itself; established-session reads have no deadline, so a hung server
// hangs the client. That is an accepted limitation for an interactive
// debug tool.
func Dial(ctx context.Context, addr string, log *zap.Logger) (*Conn, error) {
	var d net.Dialer

	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	log.Debug("Connected", zap.String("addr", addr))

	return &Conn{
		conn: conn,
		log:  log,
	}, nil
}

// Send writes one encoded line as a single write.
func (c *Conn) Send(line []byte) error {
	_, err := c.conn.Write(line)
	return err
}

// ReadReply blocks until the server sends something and returns the raw
// bytes of a single bounded read, undecoded.
func (c *Conn) ReadReply() ([]byte, error) {
	return protocol.ReadReply(c.conn)
}

// Close closes the underlying socket. Called once, at session end.
func (c *Conn) Close() error {
	c.log.Debug("Closing connection")

	return c.conn.Close()
}
