// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/saramhq/aegis/ent/renderjob"
	"github.com/saramhq/aegis/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	renderjobFields := schema.RenderJob{}.Fields()
	_ = renderjobFields
	// renderjobDescProgress is the schema descriptor for progress field.
	renderjobDescProgress := renderjobFields[5].Descriptor()
	// renderjob.DefaultProgress holds the default value on creation for the progress field.
	renderjob.DefaultProgress = renderjobDescProgress.Default.(int)
	// renderjobDescCreatedAt is the schema descriptor for created_at field.
	renderjobDescCreatedAt := renderjobFields[12].Descriptor()
	// renderjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	renderjob.DefaultCreatedAt = renderjobDescCreatedAt.Default.(func() time.Time)
	// renderjobDescUpdatedAt is the schema descriptor for updated_at field.
	renderjobDescUpdatedAt := renderjobFields[13].Descriptor()
	// renderjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	renderjob.DefaultUpdatedAt = renderjobDescUpdatedAt.Default.(func() time.Time)
	// renderjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	renderjob.UpdateDefaultUpdatedAt = renderjobDescUpdatedAt.UpdateDefault.(func() time.Time)
}
