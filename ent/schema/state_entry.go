package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// StateEntry is one key of persisted JSON state: adaptive windows,
// daily missions and the player profile.
type StateEntry struct {
	ent.Schema
}

func (StateEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{entsql.Annotation{Table: "kv_state"}}
}

func (StateEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("state_key").
			NotEmpty().
			Immutable(),
		field.Text("value").
			Comment("JSON document"),
		field.Int64("updated_at").
			Comment("Unix milliseconds of the last write"),
	}
}
