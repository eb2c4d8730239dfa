package session

import (
	"github.com/stellarsql/stellar/protocol"
)

// State carries the identity a session accumulates turn by turn: the
// user, the selected database, and the authentication key paired with
// the user. It is created once at session start and mutated in place by
// Dispatch. Access is single-threaded by construction: the whole client
// is one blocking loop, so State needs no locking.
type State struct {
	user     string
	database string
	key      string
	live     bool
}

// NewState returns a fresh session: no identity, no database, live.
func NewState() *State {
	return &State{live: true}
}

func (s *State) User() string     { return s.user }
func (s *State) Database() string { return s.database }

// Key returns the authentication key. It is meaningful only alongside a
// non-empty user; the client never checks key correctness itself, the
// server does that on registration.
func (s *State) Key() string { return s.key }

// Live reports whether the session should keep running. It starts true
// and latches false after Quit; the transition is one-way.
func (s *State) Live() bool { return s.live }

// Quit ends the session. Once dead, every mutator is a no-op: the
// session is terminal and the caller's loop is about to exit anyway.
func (s *State) Quit() { s.live = false }

// SetUser records the identity without contacting the server. The name
// is not validated here; the server judges it once a line is sent.
func (s *State) SetUser(name string) {
	if !s.live {
		return
	}

	s.user = name
}

// CreateUser records the identity and its key and returns the
// registration line to transmit.
func (s *State) CreateUser(name, key string) []byte {
	if !s.live {
		return nil
	}

	s.user = name
	s.key = key

	return protocol.EncodeRegister(name, key)
}

// CreateDatabase selects the database and returns the creation line to
// transmit.
func (s *State) CreateDatabase(name string) []byte {
	if !s.live {
		return nil
	}

	s.database = name

	return protocol.EncodeCreateDatabase(s.user, name)
}

// SelectDatabase behaves exactly like CreateDatabase. The reference
// client re-issues a `create database` statement on `use` and the
// server depends on receiving it, so switching to an existing database
// also sends a create line. Almost certainly a protocol quirk rather
// than intent, but it is what the server expects.
func (s *State) SelectDatabase(name string) []byte {
	return s.CreateDatabase(name)
}

// BuildQuery encodes free-form query text against the current identity.
// It refuses to encode until both a user and a database are
// established; this is checked before any network interaction.
func (s *State) BuildQuery(query string) ([]byte, error) {
	if s.user == "" {
		return nil, ErrMissingIdentity
	}

	if s.database == "" {
		return nil, ErrMissingDatabase
	}

	return protocol.EncodeQuery(s.user, s.database, query), nil
}
