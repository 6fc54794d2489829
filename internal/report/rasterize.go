// internal/report/rasterize.go
package report

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/DmitriyKonyrev/ml-cross-validator/internal/logging"
)

// Rasterizer turns the rendered HTML table into a PNG snapshot.
type Rasterizer interface {
	Rasterize(ctx context.Context, htmlPath, pngPath string) error
}

// CommandRasterizer shells out to a CutyCapt-compatible binary that accepts
// --url=<file url> and --out=<png path>.
type CommandRasterizer struct {
	Command string
}

// Rasterize runs the command and waits for it to exit.
func (c CommandRasterizer) Rasterize(ctx context.Context, htmlPath, pngPath string) error {
	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return eris.Wrapf(err, "report: resolve %s", htmlPath)
	}
	args := []string{"--url=file:" + abs, "--out=" + pngPath}
	logging.L().Sugar().Infow("rasterizing table", "command", c.Command, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, c.Command, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return eris.Wrapf(err, "report: %s failed: %s", c.Command, strings.TrimSpace(string(output)))
	}
	return nil
}
