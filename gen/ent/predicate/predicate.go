// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)

// Gazette is the predicate function for gazette builders.
type Gazette func(*sql.Selector)

// Notice is the predicate function for notice builders.
type Notice func(*sql.Selector)
