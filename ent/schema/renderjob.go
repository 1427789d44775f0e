package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RenderJob holds the schema definition for the RenderJob entity: one row
// per video render run. This is the only persistent state the gateway owns.
type RenderJob struct {
	ent.Schema
}

// Fields of the RenderJob.
func (RenderJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("video_id").
			Comment("Video the job renders; at most one non-terminal job per video"),
		field.String("script_id"),
		field.Enum("status").
			Values("queued", "processing", "completed", "failed", "cancelled").
			Default("queued"),
		field.Enum("step").
			Values("validate_script", "generate_tts", "generate_subtitle",
				"render_slides", "compose_video", "upload_assets", "finalize").
			Optional().
			Nillable().
			Comment("Current pipeline step while processing"),
		field.Int("progress").
			Default(0).
			Comment("0-100, monotonically non-decreasing within a run"),
		field.String("message").
			Optional().
			Nillable(),
		field.String("error_code").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("assets", map[string]string{}).
			Optional().
			Comment("video_url / subtitle_url / thumbnail_url; set only on completed"),
		field.JSON("render_spec_snapshot", map[string]interface{}{}).
			Optional().
			Comment("RenderSpec captured at start; reused verbatim on retry"),
		field.String("created_by").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When the spec was snapshotted and the step loop launched"),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the RenderJob.
func (RenderJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("video_id"),
		index.Fields("status"),
		index.Fields("video_id", "status"),
		index.Fields("status", "created_at"),
	}
}
