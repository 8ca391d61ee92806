// Package logs post-processes training log files: trimming the fixed
// environment preamble and tracking which files were already trimmed.
package logs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// TrimLines drops the first n lines of content and returns the rest.
// Asking for more lines than the content has yields an empty string, not
// an error.
func TrimLines(content string, n int) string {
	if n <= 0 {
		return content
	}
	idx := 0
	for i := 0; i < n; i++ {
		next := strings.IndexByte(content[idx:], '\n')
		if next < 0 {
			return ""
		}
		idx += next + 1
	}
	return content[idx:]
}

// TrimDir rewrites every *.log file in dir with its first n lines
// removed. Files already present in the ledger are skipped unless force
// is set, so re-running the command cannot trim a file twice. A file
// that cannot be read or written is reported and skipped.
//
// Returns the number of files trimmed and the number skipped.
func TrimDir(dir string, n int, ledger *Ledger, force bool) (trimmed, skipped int, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read logs dir %s: %w", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".log") {
			continue
		}

		if !force && ledger != nil {
			seen, serr := ledger.Seen(e.Name())
			if serr != nil {
				log.Printf("Warning: ledger lookup for %s failed: %v", e.Name(), serr)
			} else if seen {
				skipped++
				continue
			}
		}

		path := filepath.Join(dir, e.Name())
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			log.Printf("Warning: failed to read %s, skipping: %v", path, rerr)
			skipped++
			continue
		}

		if werr := os.WriteFile(path, []byte(TrimLines(string(data), n)), 0o644); werr != nil {
			log.Printf("Warning: failed to rewrite %s, skipping: %v", path, werr)
			skipped++
			continue
		}

		if ledger != nil {
			if lerr := ledger.Record(e.Name(), n); lerr != nil {
				log.Printf("Warning: failed to record %s in ledger: %v", e.Name(), lerr)
			}
		}
		trimmed++
	}
	return trimmed, skipped, nil
}
