package models

// Scene is one ordered scene in a render spec.
type Scene struct {
	SceneID      string                 `json:"scene_id"`
	SceneOrder   int                    `json:"scene_order"`
	ChapterTitle string                 `json:"chapter_title,omitempty"`
	Purpose      string                 `json:"purpose,omitempty"`
	Narration    string                 `json:"narration"`
	Caption      string                 `json:"caption,omitempty"`
	DurationSec  float64                `json:"duration_sec"`
	VisualSpec   map[string]interface{} `json:"visual_spec,omitempty"`
}

// RenderSpec is the minimum input to a render run. It is fetched from the
// backend when a job starts and snapshotted into the job row so retries are
// deterministic even if the backend's copy changes afterwards.
type RenderSpec struct {
	ScriptID         string  `json:"script_id"`
	VideoID          string  `json:"video_id"`
	Title            string  `json:"title"`
	TotalDurationSec float64 `json:"total_duration_sec"`
	Scenes           []Scene `json:"scenes"`
}

// RenderAssets are the public URLs of the artefacts a completed job produced.
type RenderAssets struct {
	VideoURL     string `json:"video_url,omitempty"`
	SubtitleURL  string `json:"subtitle_url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// ToMap converts assets to the flat map stored in the job row.
func (a RenderAssets) ToMap() map[string]string {
	m := map[string]string{}
	if a.VideoURL != "" {
		m["video_url"] = a.VideoURL
	}
	if a.SubtitleURL != "" {
		m["subtitle_url"] = a.SubtitleURL
	}
	if a.ThumbnailURL != "" {
		m["thumbnail_url"] = a.ThumbnailURL
	}
	return m
}

// AssetsFromMap rebuilds RenderAssets from the stored map.
func AssetsFromMap(m map[string]string) RenderAssets {
	return RenderAssets{
		VideoURL:     m["video_url"],
		SubtitleURL:  m["subtitle_url"],
		ThumbnailURL: m["thumbnail_url"],
	}
}
