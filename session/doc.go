package session

// This package is the core of the client: the session state machine and
// the command dispatcher that turns typed input into encoded protocol
// lines.
//
// A session accumulates three pieces of identity over its lifetime
//
// - `user`     - set by `create user` or `set user`
// - `key`      - set only by `create user`, paired with the user
// - `database` - set by `create database` or `use`
//
// plus a liveness flag flipped once by `q` / `exit`.
//
// Dispatch is stateless over that state: each turn it receives the
// current State and one raw input line, validates token counts up
// front, mutates State where the matched command calls for it, and
// returns a Result saying what (if anything) to put on the wire.
//
// Validation happens entirely client side and entirely before network
// I/O: a query is only encoded once both a user and a database are
// established, and a control command short of its minimum token count
// mutates nothing.
