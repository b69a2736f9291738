// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExportJob is the predicate function for exportjob builders.
type ExportJob func(*sql.Selector)
