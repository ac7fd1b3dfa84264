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
)

type SourceFile struct {
	ent.Schema
}

func (SourceFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "source_files"},
	}
}

func (SourceFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so the byte-level dedup index can include it
		field.UUID("history_id", uuid.UUID{}),
		field.String("stored_path").NotEmpty(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.Int("pages").NonNegative().Default(0),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (SourceFile) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY files -> ONE history
		edge.From("history", History.Type).
			Ref("files").
			Field("history_id").
			Required().
			Unique(),
	}
}

func (SourceFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_hash").Unique(),
		index.Fields("history_id", "uploaded_at"),
	}
}
