package session

import (
	"strings"
)

// Help is the static command summary printed for `h` / `help`.
const Help = `create user <username> <key>
set user <username>
create database <db_name>
use <db_name>
<query> (ex: select a1 from t1)`

// Result is the outcome of dispatching one line of user input.
type Result struct {
	// Line is the encoded protocol line to transmit, or nil when this
	// turn requires no network round trip (informational commands,
	// errors, quit).
	Line []byte

	// Notice is human-readable status text to show the user, or empty.
	Notice string

	// Err is one of the session sentinel errors. It is always recovered
	// by the caller: errors here end the turn, never the session.
	Err error
}

// Dispatch tokenizes one line of user input and applies it to the
// session. Control commands mutate state and may produce a line to
// transmit; everything unrecognized is forwarded verbatim as a query.
//
// Tokenization splits on runs of whitespace with no quoting and no
// escaping. That is a deliberate simplicity constraint of the protocol,
// not an oversight.
//
// The match order below is load-bearing: `create` is also a query
// keyword, so only the exact `create user` and `create database` forms
// are control commands and anything else starting with `create` falls
// through to the query path. There is no "unknown command" error at
// all; an unmatched first token means the input is a query.
func Dispatch(st *State, input string) Result {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return Result{Err: ErrMalformedCommand}
	}

	switch tokens[0] {
	case "create":
		if len(tokens) >= 2 && tokens[1] == "user" {
			if len(tokens) < 4 {
				return Result{Err: ErrMalformedCommand}
			}

			return Result{Line: st.CreateUser(tokens[2], tokens[3])}
		}

		if len(tokens) >= 2 && tokens[1] == "database" {
			if len(tokens) < 3 {
				return Result{Err: ErrMalformedCommand}
			}

			return Result{Line: st.CreateDatabase(tokens[2])}
		}

		// e.g. `create table t1 ...` is a query, not a control command.
		return query(st, input)

	case "set":
		if len(tokens) >= 2 && tokens[1] == "user" {
			if len(tokens) < 3 {
				return Result{Err: ErrMalformedCommand}
			}

			st.SetUser(tokens[2])

			// State change only, nothing is sent this turn.
			return Result{Notice: "user: " + tokens[2]}
		}

		return query(st, input)

	case "use":
		if len(tokens) < 2 {
			return Result{Err: ErrMalformedCommand}
		}

		return Result{
			Line:   st.SelectDatabase(tokens[1]),
			Notice: "database: " + tokens[1],
		}

	case "q", "exit":
		st.Quit()
		return Result{}

	case "h", "help":
		return Result{Notice: Help}

	default:
		return query(st, input)
	}
}

func query(st *State, input string) Result {
	line, err := st.BuildQuery(input)
	if err != nil {
		return Result{Err: err}
	}

	return Result{Line: line}
}
