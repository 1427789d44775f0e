package media

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/saramhq/aegis/pkg/models"
)

// SlideRenderer draws one still image per scene with ffmpeg: the chapter
// title (or caption) centred over a solid background.
type SlideRenderer struct {
	ffmpegPath string
}

// NewSlideRenderer creates a renderer using the given ffmpeg binary.
func NewSlideRenderer(ffmpegPath string) *SlideRenderer {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &SlideRenderer{ffmpegPath: ffmpegPath}
}

// RenderSlides writes scene-NNN.png files into dir and returns their paths
// in scene order.
func (r *SlideRenderer) RenderSlides(ctx context.Context, scenes []models.Scene, dir string) ([]string, error) {
	paths := make([]string, 0, len(scenes))
	for i, scene := range scenes {
		out := filepath.Join(dir, fmt.Sprintf("scene-%03d.png", i+1))
		cmd := exec.CommandContext(ctx, r.ffmpegPath, slideArgs(scene, out)...)
		if output, err := cmd.CombinedOutput(); err != nil {
			return nil, fmt.Errorf("ffmpeg slide %d failed: %w: %s", i+1, err, tail(string(output), 512))
		}
		paths = append(paths, out)
	}
	return paths, nil
}

func slideArgs(scene models.Scene, outputPath string) []string {
	title := strings.TrimSpace(scene.ChapterTitle)
	if title == "" {
		title = strings.TrimSpace(scene.Caption)
	}
	filter := fmt.Sprintf(
		"drawtext=text='%s':fontcolor=white:fontsize=48:x=(w-text_w)/2:y=(h-text_h)/2",
		escapeDrawText(title))
	return []string{
		"-y", "-hide_banner", "-loglevel", "error",
		"-f", "lavfi",
		"-i", "color=c=0x1a1a2e:s=1280x720:d=1",
		"-vf", filter,
		"-frames:v", "1",
		outputPath,
	}
}

// escapeDrawText escapes the characters the drawtext filter treats
// specially.
func escapeDrawText(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "'", `\'`, ":", `\:`, "%", `\%`)
	return r.Replace(s)
}
