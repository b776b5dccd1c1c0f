package models

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTagNotFound marks lookups of rows that do not exist
	ErrTagNotFound = goerr.NewTag("not_found")
	// ErrTagInvalidArgument marks malformed request parameters
	ErrTagInvalidArgument = goerr.NewTag("invalid_argument")
)
