package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GameEvent records one finished game.
type GameEvent struct {
	ent.Schema
}

func (GameEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{entsql.Annotation{Table: "game_events"}}
}

func (GameEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GameEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the game session"),
		field.String("game_mode").
			NotEmpty().
			Comment("quick_fire or speed_round"),
		field.String("subject").
			Default("").
			Comment("Subject played; empty for mixed"),
		field.Int("score").Default(0),
		field.Int("max_combo").Default(0),
		field.Int("correct").Default(0),
		field.Int("wrong").Default(0),
		field.Int("accuracy").
			Default(0).
			Comment("Whole percent, 0-100"),
		field.String("grade").Default(""),
		field.Int("xp").
			Default(0).
			Comment("XP awarded including any perfect-game bonus"),
		field.Int("duration_secs").Default(0),
		field.Bool("perfect").Default(false),
	}
}

func (GameEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("game_mode"),
	}
}
