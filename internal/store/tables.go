package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	settingsTable = "settings"

	columnID        = "id"
	columnKey       = "key"
	columnValue     = "value"
	columnUpdatedAt = "updated_at"
)

var (
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: columnID, Type: field.TypeInt, Increment: true},
		{Name: columnKey, Type: field.TypeString, Unique: true},
		{Name: columnValue, Type: field.TypeBool, Default: false},
		{Name: columnUpdatedAt, Type: field.TypeTime},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       settingsTable,
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SettingsTable,
	}
)
