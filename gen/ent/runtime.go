// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/calebmartins/exportq/db/ent/schema"
	"github.com/calebmartins/exportq/gen/ent/exportjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	exportjobFields := schema.ExportJob{}.Fields()
	_ = exportjobFields
	// exportjobDescPriority is the schema descriptor for priority field.
	exportjobDescPriority := exportjobFields[1].Descriptor()
	// exportjob.DefaultPriority holds the default value on creation for the priority field.
	exportjob.DefaultPriority = exportjobDescPriority.Default.(int)
	// exportjobDescStatus is the schema descriptor for status field.
	exportjobDescStatus := exportjobFields[2].Descriptor()
	// exportjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	exportjob.StatusValidator = exportjobDescStatus.Validators[0].(func(string) error)
	// exportjobDescRetryCount is the schema descriptor for retry_count field.
	exportjobDescRetryCount := exportjobFields[5].Descriptor()
	// exportjob.DefaultRetryCount holds the default value on creation for the retry_count field.
	exportjob.DefaultRetryCount = exportjobDescRetryCount.Default.(int)
	// exportjobDescCreatedAt is the schema descriptor for created_at field.
	exportjobDescCreatedAt := exportjobFields[7].Descriptor()
	// exportjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	exportjob.DefaultCreatedAt = exportjobDescCreatedAt.Default.(func() time.Time)
}
