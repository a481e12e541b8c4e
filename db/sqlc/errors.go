package db

import "github.com/lib/pq"

const (
	DuplicateEntry  pq.ErrorCode = "23505"
	EntryTooLong    pq.ErrorCode = "22001"
	CheckViolation  pq.ErrorCode = "23514"
	ForeignKeyError pq.ErrorCode = "23503"
)
