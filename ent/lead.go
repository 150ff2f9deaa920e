// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jfmartinez/leadpilot/ent/lead"
)

// Lead is the model entity for the Lead schema.
type Lead struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Contact or business name
	Name string `json:"name,omitempty"`
	// Contact email, stored lowercase; empty for DM-only contacts
	Email string `json:"email,omitempty"`
	// Company name
	Company string `json:"company,omitempty"`
	// Phone number, normalized to E.164 when possible
	Phone string `json:"phone,omitempty"`
	// Pipeline stage
	Stage lead.Stage `json:"stage,omitempty"`
	// Where the lead came from
	Source lead.Source `json:"source,omitempty"`
	// Assigned sales owner
	Owner string `json:"owner,omitempty"`
	// Estimated conversion probability (0-100)
	ConversionProbability int `json:"conversion_probability,omitempty"`
	// Expected or realized revenue
	Revenue *float64 `json:"revenue,omitempty"`
	// Free-form notes
	Notes string `json:"notes,omitempty"`
	// Hidden from default pipeline view; derived from stage unless overridden
	Archived bool `json:"archived,omitempty"`
	// When we last reached out to this lead
	LastContacted *time.Time `json:"last_contacted,omitempty"`
	// Set iff stage == converted
	ConvertedAt *time.Time `json:"converted_at,omitempty"`
	// Meta Lead Ads leadgen ID
	MetaLeadID string `json:"meta_lead_id,omitempty"`
	// Instagram-scoped user ID
	InstagramID string `json:"instagram_id,omitempty"`
	// Messenger page-scoped user ID
	FacebookID string `json:"facebook_id,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LeadQuery when eager-loading is set.
	Edges        LeadEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LeadEdges holds the relations/edges for other nodes in the graph.
type LeadEdges struct {
	// Append-only activity log for this lead
	Activities []*Activity `json:"activities,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ActivitiesOrErr returns the Activities value or an error if the edge
// was not loaded in eager-loading.
func (e LeadEdges) ActivitiesOrErr() ([]*Activity, error) {
	if e.loadedTypes[0] {
		return e.Activities, nil
	}
	return nil, &NotLoadedError{edge: "activities"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Lead) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lead.FieldArchived:
			values[i] = new(sql.NullBool)
		case lead.FieldRevenue:
			values[i] = new(sql.NullFloat64)
		case lead.FieldID, lead.FieldConversionProbability:
			values[i] = new(sql.NullInt64)
		case lead.FieldName, lead.FieldEmail, lead.FieldCompany, lead.FieldPhone, lead.FieldStage, lead.FieldSource, lead.FieldOwner, lead.FieldNotes, lead.FieldMetaLeadID, lead.FieldInstagramID, lead.FieldFacebookID:
			values[i] = new(sql.NullString)
		case lead.FieldLastContacted, lead.FieldConvertedAt, lead.FieldCreatedAt, lead.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Lead fields.
func (_m *Lead) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lead.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lead.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case lead.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case lead.FieldCompany:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company", values[i])
			} else if value.Valid {
				_m.Company = value.String
			}
		case lead.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case lead.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = lead.Stage(value.String)
			}
		case lead.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = lead.Source(value.String)
			}
		case lead.FieldOwner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner", values[i])
			} else if value.Valid {
				_m.Owner = value.String
			}
		case lead.FieldConversionProbability:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field conversion_probability", values[i])
			} else if value.Valid {
				_m.ConversionProbability = int(value.Int64)
			}
		case lead.FieldRevenue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field revenue", values[i])
			} else if value.Valid {
				_m.Revenue = new(float64)
				*_m.Revenue = value.Float64
			}
		case lead.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case lead.FieldArchived:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field archived", values[i])
			} else if value.Valid {
				_m.Archived = value.Bool
			}
		case lead.FieldLastContacted:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_contacted", values[i])
			} else if value.Valid {
				_m.LastContacted = new(time.Time)
				*_m.LastContacted = value.Time
			}
		case lead.FieldConvertedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field converted_at", values[i])
			} else if value.Valid {
				_m.ConvertedAt = new(time.Time)
				*_m.ConvertedAt = value.Time
			}
		case lead.FieldMetaLeadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meta_lead_id", values[i])
			} else if value.Valid {
				_m.MetaLeadID = value.String
			}
		case lead.FieldInstagramID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instagram_id", values[i])
			} else if value.Valid {
				_m.InstagramID = value.String
			}
		case lead.FieldFacebookID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field facebook_id", values[i])
			} else if value.Valid {
				_m.FacebookID = value.String
			}
		case lead.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case lead.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Lead.
// This includes values selected through modifiers, order, etc.
func (_m *Lead) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryActivities queries the "activities" edge of the Lead entity.
func (_m *Lead) QueryActivities() *ActivityQuery {
	return NewLeadClient(_m.config).QueryActivities(_m)
}

// Update returns a builder for updating this Lead.
// Note that you need to call Lead.Unwrap() before calling this method if this Lead
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Lead) Update() *LeadUpdateOne {
	return NewLeadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Lead entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Lead) Unwrap() *Lead {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Lead is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Lead) String() string {
	var builder strings.Builder
	builder.WriteString("Lead(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("company=")
	builder.WriteString(_m.Company)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("owner=")
	builder.WriteString(_m.Owner)
	builder.WriteString(", ")
	builder.WriteString("conversion_probability=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConversionProbability))
	builder.WriteString(", ")
	if v := _m.Revenue; v != nil {
		builder.WriteString("revenue=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("archived=")
	builder.WriteString(fmt.Sprintf("%v", _m.Archived))
	builder.WriteString(", ")
	if v := _m.LastContacted; v != nil {
		builder.WriteString("last_contacted=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ConvertedAt; v != nil {
		builder.WriteString("converted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("meta_lead_id=")
	builder.WriteString(_m.MetaLeadID)
	builder.WriteString(", ")
	builder.WriteString("instagram_id=")
	builder.WriteString(_m.InstagramID)
	builder.WriteString(", ")
	builder.WriteString("facebook_id=")
	builder.WriteString(_m.FacebookID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Leads is a parsable slice of Lead.
type Leads []*Lead
