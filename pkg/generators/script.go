package generators

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/saramhq/aegis/pkg/models"
)

// ScriptRequest asks for a video script over source document text.
type ScriptRequest struct {
	Title             string        `json:"title"`
	Domain            models.Domain `json:"domain,omitempty"`
	DocumentText      string        `json:"document_text"`
	TargetDurationSec float64       `json:"target_duration_sec,omitempty"`
}

// defaultScriptDurationSec bounds scripts when the caller gives no target.
const defaultScriptDurationSec = 120

// ScriptGenerator turns approved document text into a scene-by-scene video
// script shaped like the render spec the job runner consumes.
type ScriptGenerator struct {
	llm    Completer
	logger *slog.Logger
}

// NewScriptGenerator creates the script generator.
func NewScriptGenerator(completer Completer) *ScriptGenerator {
	return &ScriptGenerator{llm: completer, logger: slog.With("component", "script_generator")}
}

type scriptRawScene struct {
	ChapterTitle string  `json:"chapter_title"`
	Purpose      string  `json:"purpose"`
	Narration    string  `json:"narration"`
	Caption      string  `json:"caption"`
	DurationSec  float64 `json:"duration_sec"`
}

// Generate produces a script. Scene durations are normalised to the target
// duration so the narration pace is decided here, not by the renderer.
func (g *ScriptGenerator) Generate(ctx context.Context, req ScriptRequest) (*models.RenderSpec, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, invalidRequestf("script title is required")
	}
	if strings.TrimSpace(req.DocumentText) == "" {
		return nil, invalidRequestf("script document text is required")
	}
	target := req.TargetDurationSec
	if target <= 0 {
		target = defaultScriptDurationSec
	}

	messages := []models.Message{
		{Role: models.RoleSystem, Content: scriptSystemPrompt(target)},
		{Role: models.RoleUser, Content: fmt.Sprintf("제목: %s\n\n원문:\n%s", req.Title, req.DocumentText)},
	}
	completion, err := g.llm.Complete(ctx, messages, llmOptions())
	if err != nil {
		return nil, fmt.Errorf("generate script: %w", err)
	}

	var raw []scriptRawScene
	if err := decodeJSON(completion.Text, &raw); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	scenes := make([]models.Scene, 0, len(raw))
	for _, s := range raw {
		if strings.TrimSpace(s.Narration) == "" {
			continue
		}
		scenes = append(scenes, models.Scene{
			SceneID:      fmt.Sprintf("scene-%d", len(scenes)+1),
			SceneOrder:   len(scenes) + 1,
			ChapterTitle: s.ChapterTitle,
			Purpose:      s.Purpose,
			Narration:    s.Narration,
			Caption:      s.Caption,
			DurationSec:  s.DurationSec,
		})
	}
	if len(scenes) == 0 {
		return nil, fmt.Errorf("script has no usable scenes")
	}

	normalizeDurations(scenes, target)
	return &models.RenderSpec{
		Title:            req.Title,
		TotalDurationSec: target,
		Scenes:           scenes,
	}, nil
}

// normalizeDurations rescales scene durations to sum to target. Scenes with
// no duration get an even share first.
func normalizeDurations(scenes []models.Scene, target float64) {
	total := 0.0
	for _, s := range scenes {
		total += s.DurationSec
	}
	if total <= 0 {
		share := target / float64(len(scenes))
		for i := range scenes {
			scenes[i].DurationSec = share
		}
		return
	}
	scale := target / total
	for i := range scenes {
		scenes[i].DurationSec *= scale
	}
}

func scriptSystemPrompt(target float64) string {
	return fmt.Sprintf(`당신은 사내 교육 영상 대본 작가입니다. 제공된 원문을 약 %.0f초 분량의 장면별 영상 대본으로 재구성하세요.
각 장면에는 내레이션과 화면 자막을 포함합니다. 원문에 없는 내용은 추가하지 마세요.
다음 JSON 배열 형식으로만 응답하세요:
[{"chapter_title": "...", "purpose": "...", "narration": "...", "caption": "...", "duration_sec": 15}]`, target)
}
