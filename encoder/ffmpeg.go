package encoder

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// FFmpeg encodes by piping PNG frames into an external ffmpeg process.
// The output is written to a temporary file and read back when the
// session closes, so a failed encode never yields a partial artifact.
type FFmpeg struct {
	// Path is the ffmpeg binary. Empty means "ffmpeg" on PATH.
	Path string
}

// Begin starts an ffmpeg process for the session.
func (f *FFmpeg) Begin(ctx context.Context, opts Options) (Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	bin := f.Path
	if bin == "" {
		bin = "ffmpeg"
	}

	dir, err := os.MkdirTemp("", "starmotion-export-*")
	if err != nil {
		return nil, fmt.Errorf("encoder: create temp dir: %w", err)
	}
	out := filepath.Join(dir, "out."+opts.Ext())

	args := []string{
		"-y",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-r", strconv.Itoa(opts.FrameRate),
		"-i", "-",
	}
	args = append(args, codecArgs(opts.Format)...)
	args = append(args, "-r", strconv.Itoa(opts.FrameRate), out)

	cmd := exec.CommandContext(ctx, bin, args...) //nolint:gosec // binary path is operator-configured
	stdin, err := cmd.StdinPipe()
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("encoder: open stdin pipe: %w", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Start(); err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("encoder: start %s: %w", bin, err)
	}

	return &ffmpegSession{
		cmd:    cmd,
		stdin:  stdin,
		stderr: &stderr,
		dir:    dir,
		out:    out,
		opts:   opts,
	}, nil
}

func codecArgs(format string) []string {
	switch format {
	case "webm":
		return []string{"-c:v", "libvpx-vp9", "-pix_fmt", "yuv420p", "-b:v", "0", "-crf", "30"}
	case "mp4":
		return []string{"-c:v", "libx264", "-pix_fmt", "yuv420p", "-movflags", "+faststart"}
	default: // gif
		return []string{"-f", "gif"}
	}
}

type ffmpegSession struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr *bytes.Buffer
	dir    string
	out    string
	opts   Options
}

func (s *ffmpegSession) WriteFrame(img *image.RGBA) error {
	b := img.Bounds()
	if b.Dx() != s.opts.Width || b.Dy() != s.opts.Height {
		s.Abort()
		return fmt.Errorf("encoder: frame size %dx%d does not match session %dx%d",
			b.Dx(), b.Dy(), s.opts.Width, s.opts.Height)
	}
	if err := png.Encode(s.stdin, img); err != nil {
		s.Abort()
		return fmt.Errorf("encoder: write frame: %w (%s)", err, tail(s.stderr))
	}
	return nil
}

func (s *ffmpegSession) Close() ([]byte, error) {
	defer func() {
		_ = os.RemoveAll(s.dir)
	}()
	if err := s.stdin.Close(); err != nil {
		_ = s.cmd.Process.Kill()
		_ = s.cmd.Wait()
		return nil, fmt.Errorf("encoder: close stream: %w", err)
	}
	if err := s.cmd.Wait(); err != nil {
		return nil, fmt.Errorf("encoder: ffmpeg: %w (%s)", err, tail(s.stderr))
	}
	blob, err := os.ReadFile(s.out)
	if err != nil {
		return nil, fmt.Errorf("encoder: read artifact: %w", err)
	}
	return blob, nil
}

func (s *ffmpegSession) Abort() {
	_ = s.stdin.Close()
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	_ = s.cmd.Wait()
	_ = os.RemoveAll(s.dir)
}

// tail returns the last line of ffmpeg's stderr for error context.
func tail(buf *bytes.Buffer) string {
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) == 0 {
		return ""
	}
	return string(lines[len(lines)-1])
}
