package store

import (
	"cmp"
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	dialectsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"github.com/samber/lo"

	entschema "github.com/abhisek/cramgames/ent/schema"
)

// Tables returns the SQL tables declared by the ent schema, in creation order.
func Tables() []*schema.Table {
	return []*schema.Table{
		tableFor(entschema.StateEntry{}),
		tableFor(entschema.GameEvent{}),
	}
}

// migrate creates or updates the tables through ent's Atlas migrator.
func migrate(ctx context.Context, db *sql.DB) error {
	m, err := schema.NewMigrate(dialectsql.OpenDB(dialect.SQLite, db))
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Create(ctx, Tables()...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

// tableFor converts an ent schema into its SQL table. Mixin fields come
// first; the "id" field becomes the primary key and autoincrements when
// it is an integer.
func tableFor(s ent.Interface) *schema.Table {
	var (
		fields  []ent.Field
		indexes []ent.Index
	)
	for _, m := range s.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)

	t := schema.NewTable(tableName(s))
	columns := make(map[string]string, len(fields))
	for _, f := range fields {
		d := f.Descriptor()
		c := &schema.Column{
			Name:     cmp.Or(d.StorageKey, d.Name),
			Type:     d.Info.Type,
			Size:     int64(d.Size),
			Nullable: d.Optional,
			Default:  d.Default,
			Comment:  d.Comment,
		}
		columns[d.Name] = c.Name
		if d.Name == "id" {
			c.Increment = d.Info.Type.Integer()
			t.AddPrimary(c)
			continue
		}
		c.Unique = d.Unique
		t.AddColumn(c)
	}

	for _, idx := range indexes {
		d := idx.Descriptor()
		cols := lo.Map(d.Fields, func(name string, _ int) string { return cmp.Or(columns[name], name) })
		name := cmp.Or(d.StorageKey, t.Name+"_"+strings.Join(cols, "_"))
		t.AddIndex(name, d.Unique, cols)
	}
	return t
}

// tableName reads the entsql table annotation, falling back to the
// lower-cased type name.
func tableName(s ent.Interface) string {
	for _, a := range s.Annotations() {
		switch a := a.(type) {
		case entsql.Annotation:
			if a.Table != "" {
				return a.Table
			}
		case *entsql.Annotation:
			if a != nil && a.Table != "" {
				return a.Table
			}
		}
	}
	return strings.ToLower(reflect.TypeOf(s).Name())
}
