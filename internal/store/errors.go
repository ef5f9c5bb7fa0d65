package store

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrInTransaction  = errors.New("store is already in a transaction")
)
