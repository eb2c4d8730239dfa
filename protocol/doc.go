package protocol

// This package implements serialising payloads for the session protocol
// that StellarSQL servers speak with their clients.
//
// This protocol aims to be
//
// - easy to implement
// - human readable
// - trivially splittable on the server side
//
// === General Syntax
//
// - every payload is a single line terminated by '\n', sent as one write
// - fields within a line are delimited by the literal two-byte
//   sequence `||`
// - statement payloads (queries and `create database`) carry a
//   trailing `;`; the registration payload does not
//
// === Registration
//
//   ```
//     <user>||||||<key>\n
//   ```
//
// The six consecutive pipes are two empty fields folded between user
// and key. The server splits on `||` and relies on this exact cadence,
// so it must be reproduced byte for byte.
//
// === Create database
//
//   ```
//     <user>||||create database <name>;\n
//   ```
//
// === Query
//
//   ```
//     <user>||<database>||<query text>;\n
//   ```
//
// === Replies
//
// The server answers each line with an opaque blob of bytes. The client
// issues a single read of at most MaxReplySize bytes per sent line and
// surfaces the result verbatim; it never decodes or validates reply
// structure. Replies larger than one read are truncated; a known
// limitation of this protocol, not handled here.
