package protocol

import (
	"bytes"
)

var (
	// Separator delimits fields within an encoded line.
	Separator = []byte("||")

	// Terminal ends every encoded line.
	Terminal = []byte("\n")
)

// EncodeRegister builds the registration line for a new user:
//
//	<user>||||||<key>\n
//
// The two empty fields between user and key are required by the server's
// splitter and no trailing ';' is appended: registration is a credential
// pair, not a statement.
func EncodeRegister(user, key string) []byte {
	var b bytes.Buffer

	b.WriteString(user)
	b.Write(Separator)
	b.Write(Separator)
	b.Write(Separator)
	b.WriteString(key)
	b.Write(Terminal)

	return b.Bytes()
}

// EncodeCreateDatabase builds the database creation line:
//
//	<user>||||create database <name>;\n
func EncodeCreateDatabase(user, name string) []byte {
	var b bytes.Buffer

	b.WriteString(user)
	b.Write(Separator)
	b.Write(Separator)
	b.WriteString("create database ")
	b.WriteString(name)
	b.WriteByte(';')
	b.Write(Terminal)

	return b.Bytes()
}

// EncodeQuery builds a query line against the current session identity:
//
//	<user>||<database>||<query text>;\n
//
// The query text is carried verbatim, exactly as the user typed it.
func EncodeQuery(user, database, query string) []byte {
	var b bytes.Buffer

	b.WriteString(user)
	b.Write(Separator)
	b.WriteString(database)
	b.Write(Separator)
	b.WriteString(query)
	b.WriteByte(';')
	b.Write(Terminal)

	return b.Bytes()
}
