package grid

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/creack/pty"
	"github.com/google/uuid"

	"github.com/nomnemo/swin-tiny-seabird-classifier/internal/config"
	"github.com/nomnemo/swin-tiny-seabird-classifier/internal/models"
)

// timestampLayout gives second resolution, which is enough to keep log
// names unique across repeated sweeps of the same combination.
const timestampLayout = "2006-01-02T15-04-05"

// LogFileName encodes a combination plus timestamp into a filesystem-safe
// log name. Float values have their dots replaced, so the only dot in the
// name is the extension.
func LogFileName(rc models.RunConfig, t time.Time) string {
	return fmt.Sprintf("train_%s_%s.log", rc.Slug(), t.Format(timestampLayout))
}

// Runner executes one training invocation per grid combination,
// sequentially, teeing each child's merged output to the console and a
// per-run log file.
type Runner struct {
	cfg     *config.GridConfig
	console io.Writer
	dryRun  bool
	now     func() time.Time
	sleep   func(time.Duration)
}

// NewRunner creates a runner for the given config.
func NewRunner(cfg *config.GridConfig, dryRun bool) *Runner {
	return &Runner{
		cfg:     cfg,
		console: os.Stdout,
		dryRun:  dryRun,
		now:     time.Now,
		sleep:   time.Sleep,
	}
}

// Sweep runs the full grid. Failure to create the logs directory is
// fatal; a failing child is reported and, by default, the sweep moves on
// to the next combination. The returned session manifest lists every run
// and is also written to the logs directory.
func (r *Runner) Sweep() (*models.Session, error) {
	if err := os.MkdirAll(r.cfg.LogsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create logs dir %s: %w", r.cfg.LogsDir, err)
	}

	combos := Enumerate(r.cfg.Grid)
	start := r.now()
	session := &models.Session{
		SessionID: uuid.NewString(),
		StartedAt: start.UTC().Format(time.RFC3339),
		Script:    strings.Join(r.cfg.Command, " "),
		DryRun:    r.dryRun,
	}

	for i, rc := range combos {
		log.Printf("[grid] run %d/%d: %s", i+1, len(combos), rc)
		res := r.runOne(rc)
		session.Runs = append(session.Runs, res)

		if res.ExitCode != 0 {
			log.Printf("[grid] run failed (exit %d), see %s", res.ExitCode, res.LogFile)
			if !r.cfg.ContinueOnError {
				break
			}
		}

		if !r.dryRun && i < len(combos)-1 && r.cfg.Pause() > 0 {
			r.sleep(r.cfg.Pause())
		}
	}

	session.EndedAt = r.now().UTC().Format(time.RFC3339)
	if err := r.writeManifest(session, start); err != nil {
		log.Printf("Warning: failed to write session manifest: %v", err)
	}
	return session, nil
}

func (r *Runner) runOne(rc models.RunConfig) models.RunResult {
	args := append(append([]string(nil), r.cfg.Command[1:]...), rc.Args()...)
	res := models.RunResult{Combination: rc.Slug()}

	if r.dryRun {
		fmt.Fprintf(r.console, "would run: %s %s\n", r.cfg.Command[0], strings.Join(args, " "))
		return res
	}

	logPath := filepath.Join(r.cfg.LogsDir, LogFileName(rc, r.now()))
	res.LogFile = filepath.Base(logPath)

	f, err := os.Create(logPath)
	if err != nil {
		res.ExitCode = -1
		res.Error = fmt.Sprintf("failed to create log file: %v", err)
		return res
	}
	defer f.Close()

	started := r.now()
	cmd := exec.Command(r.cfg.Command[0], args...)
	sink := io.MultiWriter(r.console, f)

	if r.cfg.UsePTY {
		err = runPTY(cmd, sink)
	} else {
		cmd.Stdout = sink
		cmd.Stderr = sink
		err = cmd.Run()
	}
	res.Duration = r.now().Sub(started).Round(time.Millisecond).String()

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.ExitCode = -1
			res.Error = err.Error()
		}
	}
	return res
}

// runPTY starts the child under a pseudo-terminal so progress bars keep
// refreshing, and pumps everything the child writes into the sink. The
// read loop drains the PTY fully before the exit status is collected.
func runPTY(cmd *exec.Cmd, sink io.Writer) error {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("failed to start PTY: %w", err)
	}
	defer ptmx.Close()

	buf := make([]byte, 32*1024)
	for {
		n, readErr := ptmx.Read(buf)
		if n > 0 {
			if _, werr := sink.Write(buf[:n]); werr != nil {
				log.Printf("Warning: log write failed: %v", werr)
			}
		}
		if readErr != nil {
			// The PTY returns EIO once the child exits.
			break
		}
	}
	return cmd.Wait()
}

// writeManifest records the sweep outcome next to the logs it produced.
func (r *Runner) writeManifest(session *models.Session, start time.Time) error {
	name := fmt.Sprintf("%s%s.yaml", config.SessionFilePrefix, start.Format(timestampLayout))
	return config.SaveYAML(filepath.Join(r.cfg.LogsDir, name), session)
}
