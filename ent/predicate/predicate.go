// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// RenderJob is the predicate function for renderjob builders.
type RenderJob func(*sql.Selector)
