package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/calebmartins/exportq/constants"
	"github.com/calebmartins/exportq/db/ent/schema/utils"
)

// ExportJob is the persisted history row for one scheduled export.
type ExportJob struct{ ent.Schema }

func (ExportJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "export_job"},
	}
}

func (ExportJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Immutable(),
		field.Int("priority").Default(0),
		field.String("status").
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.JSON("payload", json.RawMessage{}).
			Optional(),
		field.JSON("result", json.RawMessage{}).
			Optional(),
		field.Int("retry_count").Default(0),
		field.String("last_error").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("started_at").Optional().Nillable(),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (ExportJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("created_at"),
	}
}
