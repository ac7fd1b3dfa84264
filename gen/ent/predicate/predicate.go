// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// History is the predicate function for history builders.
type History func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// SourceFile is the predicate function for sourcefile builders.
type SourceFile func(*sql.Selector)
