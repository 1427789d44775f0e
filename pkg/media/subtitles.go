// Package media builds render artefacts: timed subtitles, duration
// reconciliation against synthesised audio, and the deterministic ffmpeg
// invocations that compose the final video.
package media

import (
	"fmt"
	"strings"
	"time"

	"github.com/saramhq/aegis/pkg/models"
)

// BuildSRT renders scenes as SubRip subtitles aligned to scene durations.
// Scenes without a caption fall back to their narration text.
func BuildSRT(scenes []models.Scene) string {
	var sb strings.Builder
	var cursor float64
	index := 1
	for _, scene := range scenes {
		text := scene.Caption
		if text == "" {
			text = scene.Narration
		}
		start := cursor
		cursor += scene.DurationSec
		if strings.TrimSpace(text) == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("%d\n%s --> %s\n%s\n\n",
			index, srtTimestamp(start), srtTimestamp(cursor), strings.TrimSpace(text)))
		index++
	}
	return sb.String()
}

// srtTimestamp formats seconds as HH:MM:SS,mmm.
func srtTimestamp(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second))
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	ms := int(d.Milliseconds()) % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// ReconcileDurations scales scene durations so their sum matches the actual
// synthesised audio duration. Declared durations are authoring estimates; the
// audio is the ground truth for subtitle and slide timing.
func ReconcileDurations(scenes []models.Scene, audioDurationSec float64) []models.Scene {
	if audioDurationSec <= 0 || len(scenes) == 0 {
		return scenes
	}
	var declared float64
	for _, s := range scenes {
		declared += s.DurationSec
	}
	if declared <= 0 {
		// No declared timings: split the audio evenly.
		per := audioDurationSec / float64(len(scenes))
		out := make([]models.Scene, len(scenes))
		for i, s := range scenes {
			s.DurationSec = per
			out[i] = s
		}
		return out
	}

	factor := audioDurationSec / declared
	out := make([]models.Scene, len(scenes))
	for i, s := range scenes {
		s.DurationSec *= factor
		out[i] = s
	}
	return out
}
