package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Patient struct{ ent.Schema }

func (Patient) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "patients"},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		// the national ID is the master-record key when present; histories
		// without one stay linked only through their fingerprint
		field.String("dni").Optional().Nillable(),
		field.String("birth_date").Optional().Nillable(),
		field.String("insurer").Optional().Nillable(),
		field.String("member_id").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("histories", History.Type),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dni").Unique(),
	}
}
