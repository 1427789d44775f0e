package media

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Composer runs ffmpeg to assemble the final video and thumbnail.
type Composer struct {
	ffmpegPath string
}

// NewComposer creates a composer using the given ffmpeg binary.
func NewComposer(ffmpegPath string) *Composer {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &Composer{ffmpegPath: ffmpegPath}
}

// ComposeInput describes one video composition.
type ComposeInput struct {
	AudioPath    string
	SubtitlePath string
	// SlideListPath is an ffmpeg concat list of per-scene stills. Empty
	// means no slides were rendered and a solid background is used.
	SlideListPath string
	DurationSec   float64
	OutputPath    string
}

// Compose combines audio, slides (or a solid background) and subtitles into
// an MP4. The invocation is deterministic for identical inputs.
func (c *Composer) Compose(ctx context.Context, in ComposeInput) error {
	args := composeArgs(in)
	cmd := exec.CommandContext(ctx, c.ffmpegPath, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg compose failed: %w: %s", err, tail(string(out), 512))
	}
	return nil
}

// ExtractThumbnail grabs a single frame one second in as a JPEG.
func (c *Composer) ExtractThumbnail(ctx context.Context, videoPath, outputPath string) error {
	args := thumbnailArgs(videoPath, outputPath)
	cmd := exec.CommandContext(ctx, c.ffmpegPath, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg thumbnail failed: %w: %s", err, tail(string(out), 512))
	}
	return nil
}

func composeArgs(in ComposeInput) []string {
	args := []string{"-y", "-hide_banner", "-loglevel", "error"}

	if in.SlideListPath != "" {
		args = append(args, "-f", "concat", "-safe", "0", "-i", in.SlideListPath)
	} else {
		args = append(args,
			"-f", "lavfi",
			"-i", fmt.Sprintf("color=c=0x1a1a2e:s=1280x720:d=%.3f", in.DurationSec))
	}
	args = append(args, "-i", in.AudioPath)

	if in.SubtitlePath != "" {
		args = append(args, "-vf", "subtitles="+escapeFilterPath(in.SubtitlePath))
	}

	args = append(args,
		"-c:v", "libx264",
		"-preset", "medium",
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-shortest",
		in.OutputPath)
	return args
}

func thumbnailArgs(videoPath, outputPath string) []string {
	return []string{
		"-y", "-hide_banner", "-loglevel", "error",
		"-ss", "00:00:01",
		"-i", videoPath,
		"-frames:v", "1",
		"-q:v", "3",
		outputPath,
	}
}

// escapeFilterPath escapes the characters the subtitles filter treats
// specially.
func escapeFilterPath(p string) string {
	r := strings.NewReplacer(`\`, `\\`, ":", `\:`, "'", `\'`)
	return r.Replace(p)
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
