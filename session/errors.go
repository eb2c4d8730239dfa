package session

import (
	"errors"
)

var (
	// ErrMalformedCommand reports input that matched a control command
	// but did not carry its minimum token count, or an empty line.
	// Token counts are validated before any state mutation, so a
	// malformed command never leaves partial session state behind.
	ErrMalformedCommand = errors.New("Syntax error! Enter `h` to see commands")

	// ErrMissingIdentity reports a query attempted before any user was
	// set or created.
	ErrMissingIdentity = errors.New("Please set or create user!")

	// ErrMissingDatabase reports a query attempted before any database
	// was selected or created.
	ErrMissingDatabase = errors.New("Please use or create database!")
)
