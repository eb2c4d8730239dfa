package shell

import (
	"bufio"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/stellarsql/stellar/session"
)

const (
	// Prompt is printed before every read of user input.
	Prompt = "StellarSQL> "

	// Banner greets the user once per session.
	Banner = "== Welcome to StellarSQL Client! =="
)

// Conn is the part of client.Conn the shell needs. Tests substitute an
// in-memory implementation.
type Conn interface {
	Send(line []byte) error
	ReadReply() ([]byte, error)
}

// Shell owns the interactive loop: read one line, dispatch it against
// the session, transmit the encoded line when one is produced, print
// the raw reply. Strictly synchronous; the session protocol permits no
// pipelining.
type Shell struct {
	conn  Conn
	in    *bufio.Scanner
	out   io.Writer
	state *session.State
	log   *zap.Logger
}

func New(conn Conn, in io.Reader, out io.Writer, log *zap.Logger) *Shell {
	return &Shell{
		conn:  conn,
		in:    bufio.NewScanner(in),
		out:   out,
		state: session.NewState(),
		log:   log,
	}
}

// Run drives the session until the user quits or input ends. Dispatch
// errors are guidance for the user and never end the session; only I/O
// failure on the socket or on input does.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, Banner)

	for s.state.Live() {
		fmt.Fprint(s.out, Prompt)

		if !s.in.Scan() {
			// EOF on input ends the session the same way `exit` does.
			s.state.Quit()
			break
		}

		res := session.Dispatch(s.state, s.in.Text())
		if res.Err != nil {
			fmt.Fprintln(s.out, res.Err.Error())
			continue
		}

		if res.Notice != "" {
			fmt.Fprintln(s.out, res.Notice)
		}

		if res.Line == nil {
			continue
		}

		s.log.Debug("Sending line", zap.ByteString("line", res.Line))

		if err := s.conn.Send(res.Line); err != nil {
			return fmt.Errorf("failed to send line: %w", err)
		}

		reply, err := s.conn.ReadReply()
		if err != nil {
			return fmt.Errorf("failed to read reply: %w", err)
		}

		// The reply is opaque: print the raw bytes verbatim.
		if _, err := s.out.Write(reply); err != nil {
			return err
		}

		fmt.Fprintln(s.out)
	}

	return s.in.Err()
}
