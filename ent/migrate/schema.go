// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivitiesColumns holds the columns for the "activities" table.
	ActivitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"note", "instagram_message", "messenger_message", "email_out", "stage_change", "system"}, Default: "note"},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lead_id", Type: field.TypeInt},
	}
	// ActivitiesTable holds the schema information for the "activities" table.
	ActivitiesTable = &schema.Table{
		Name:       "activities",
		Columns:    ActivitiesColumns,
		PrimaryKey: []*schema.Column{ActivitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "activities_leads_activities",
				Columns:    []*schema.Column{ActivitiesColumns[4]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "activity_lead_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[4], ActivitiesColumns[3]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"contacted_1", "contacted_2", "called", "on_hold", "interested", "onboarding_sent", "converted", "not_interested", "no_response", "not_qualified"}, Default: "contacted_1"},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"website", "linkedin", "referral", "email", "instagram", "meta_ads", "google_ads", "other"}, Default: "other"},
		{Name: "owner", Type: field.TypeString, Nullable: true},
		{Name: "conversion_probability", Type: field.TypeInt, Default: 50},
		{Name: "revenue", Type: field.TypeFloat64, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "archived", Type: field.TypeBool, Default: false},
		{Name: "last_contacted", Type: field.TypeTime, Nullable: true},
		{Name: "converted_at", Type: field.TypeTime, Nullable: true},
		{Name: "meta_lead_id", Type: field.TypeString, Nullable: true},
		{Name: "instagram_id", Type: field.TypeString, Nullable: true},
		{Name: "facebook_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lead_stage_archived",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[5], LeadsColumns[11]},
			},
			{
				Name:    "lead_email",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[2]},
			},
			{
				Name:    "lead_meta_lead_id",
				Unique:  true,
				Columns: []*schema.Column{LeadsColumns[14]},
			},
			{
				Name:    "lead_instagram_id",
				Unique:  true,
				Columns: []*schema.Column{LeadsColumns[15]},
			},
			{
				Name:    "lead_facebook_id",
				Unique:  true,
				Columns: []*schema.Column{LeadsColumns[16]},
			},
			{
				Name:    "lead_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[17]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString},
		{Name: "value", Type: field.TypeJSON},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "setting_key",
				Unique:  true,
				Columns: []*schema.Column{SettingsColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivitiesTable,
		LeadsTable,
		SettingsTable,
		UsersTable,
	}
)

func init() {
	ActivitiesTable.ForeignKeys[0].RefTable = LeadsTable
}
