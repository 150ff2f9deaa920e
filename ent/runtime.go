// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jfmartinez/leadpilot/ent/activity"
	"github.com/jfmartinez/leadpilot/ent/lead"
	"github.com/jfmartinez/leadpilot/ent/schema"
	"github.com/jfmartinez/leadpilot/ent/setting"
	"github.com/jfmartinez/leadpilot/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityFields := schema.Activity{}.Fields()
	_ = activityFields
	// activityDescLeadID is the schema descriptor for lead_id field.
	activityDescLeadID := activityFields[0].Descriptor()
	// activity.LeadIDValidator is a validator for the "lead_id" field. It is called by the builders before save.
	activity.LeadIDValidator = activityDescLeadID.Validators[0].(func(int) error)
	// activityDescBody is the schema descriptor for body field.
	activityDescBody := activityFields[2].Descriptor()
	// activity.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	activity.BodyValidator = activityDescBody.Validators[0].(func(string) error)
	// activityDescCreatedAt is the schema descriptor for created_at field.
	activityDescCreatedAt := activityFields[3].Descriptor()
	// activity.DefaultCreatedAt holds the default value on creation for the created_at field.
	activity.DefaultCreatedAt = activityDescCreatedAt.Default.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescName is the schema descriptor for name field.
	leadDescName := leadFields[0].Descriptor()
	// lead.NameValidator is a validator for the "name" field. It is called by the builders before save.
	lead.NameValidator = leadDescName.Validators[0].(func(string) error)
	// leadDescConversionProbability is the schema descriptor for conversion_probability field.
	leadDescConversionProbability := leadFields[7].Descriptor()
	// lead.DefaultConversionProbability holds the default value on creation for the conversion_probability field.
	lead.DefaultConversionProbability = leadDescConversionProbability.Default.(int)
	// lead.ConversionProbabilityValidator is a validator for the "conversion_probability" field. It is called by the builders before save.
	lead.ConversionProbabilityValidator = func() func(int) error {
		validators := leadDescConversionProbability.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(conversion_probability int) error {
			for _, fn := range fns {
				if err := fn(conversion_probability); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// leadDescArchived is the schema descriptor for archived field.
	leadDescArchived := leadFields[10].Descriptor()
	// lead.DefaultArchived holds the default value on creation for the archived field.
	lead.DefaultArchived = leadDescArchived.Default.(bool)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[16].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescUpdatedAt is the schema descriptor for updated_at field.
	leadDescUpdatedAt := leadFields[17].Descriptor()
	// lead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lead.DefaultUpdatedAt = leadDescUpdatedAt.Default.(func() time.Time)
	// lead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lead.UpdateDefaultUpdatedAt = leadDescUpdatedAt.UpdateDefault.(func() time.Time)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescKey is the schema descriptor for key field.
	settingDescKey := settingFields[0].Descriptor()
	// setting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	setting.KeyValidator = settingDescKey.Validators[0].(func(string) error)
	// settingDescVersion is the schema descriptor for version field.
	settingDescVersion := settingFields[2].Descriptor()
	// setting.DefaultVersion holds the default value on creation for the version field.
	setting.DefaultVersion = settingDescVersion.Default.(int)
	// settingDescUpdatedAt is the schema descriptor for updated_at field.
	settingDescUpdatedAt := settingFields[3].Descriptor()
	// setting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	setting.DefaultUpdatedAt = settingDescUpdatedAt.Default.(func() time.Time)
	// setting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	setting.UpdateDefaultUpdatedAt = settingDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[3].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
