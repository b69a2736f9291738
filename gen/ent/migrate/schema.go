// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExportJobColumns holds the columns for the "export_job" table.
	ExportJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// ExportJobTable holds the schema information for the "export_job" table.
	ExportJobTable = &schema.Table{
		Name:       "export_job",
		Columns:    ExportJobColumns,
		PrimaryKey: []*schema.Column{ExportJobColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exportjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExportJobColumns[2], ExportJobColumns[7]},
			},
			{
				Name:    "exportjob_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExportJobColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExportJobTable,
	}
)

func init() {
	ExportJobTable.Annotation = &entsql.Annotation{
		Table: "export_job",
	}
}
