// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// RenderJobsColumns holds the columns for the "render_jobs" table.
	RenderJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "video_id", Type: field.TypeString},
		{Name: "script_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "processing", "completed", "failed", "cancelled"}, Default: "queued"},
		{Name: "step", Type: field.TypeEnum, Nullable: true, Enums: []string{"validate_script", "generate_tts", "generate_subtitle", "render_slides", "compose_video", "upload_assets", "finalize"}},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "message", Type: field.TypeString, Nullable: true},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "assets", Type: field.TypeJSON, Nullable: true},
		{Name: "render_spec_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// RenderJobsTable holds the schema information for the "render_jobs" table.
	RenderJobsTable = &schema.Table{
		Name:       "render_jobs",
		Columns:    RenderJobsColumns,
		PrimaryKey: []*schema.Column{RenderJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "renderjob_video_id",
				Unique:  false,
				Columns: []*schema.Column{RenderJobsColumns[1]},
			},
			{
				Name:    "renderjob_status",
				Unique:  false,
				Columns: []*schema.Column{RenderJobsColumns[3]},
			},
			{
				Name:    "renderjob_video_id_status",
				Unique:  false,
				Columns: []*schema.Column{RenderJobsColumns[1], RenderJobsColumns[3]},
			},
			{
				Name:    "renderjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RenderJobsColumns[3], RenderJobsColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		RenderJobsTable,
	}
)

func init() {
}
