package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/ulieet/NeuroSoft/constants"
	"github.com/ulieet/NeuroSoft/db/ent/schema/utils"
)

type History struct{ ent.Schema }

func (History) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "histories"},
	}
}

func (History) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("patient_id", uuid.UUID{}).Optional().Nillable(),
		field.String("file_name").NotEmpty(),
		field.String("format").
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.String("status").
			Default(string(constants.HistoryStatusPending)).
			Validate(utils.EnumValidator(constants.HistoryStatusValues()...)),
		// fingerprint dedup key: DNI|date|hash or date|diagnosis|hash
		field.String("fingerprint").NotEmpty(),
		field.String("source_hash").NotEmpty(),
		field.JSON("draft", map[string]interface{}{}).
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.JSON("validated", map[string]interface{}{}).
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.Time("imported_at").Default(time.Now).Immutable(),
		field.Time("validated_at").Optional().Nillable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (History) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY histories -> ONE patient (FK: histories.patient_id)
		edge.From("patient", Patient.Type).
			Ref("histories").
			Field("patient_id").
			Unique(),
		// ONE history -> MANY stored files
		edge.To("files", SourceFile.Type),
	}
}

func (History) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fingerprint").Unique(),
		index.Fields("status", "imported_at"),
	}
}
