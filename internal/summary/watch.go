package summary

import (
	"log"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay batches the burst of write events a finishing training
// run produces into a single re-aggregation.
const debounceDelay = 500 * time.Millisecond

// Watch re-aggregates dir whenever a log file changes, until stop is
// closed. It writes an initial summary before waiting for events.
func Watch(dir string, stop <-chan struct{}) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsWatcher.Close()

	if err := fsWatcher.Add(dir); err != nil {
		return err
	}

	rerun := func() {
		n, path, err := Run(dir)
		if err != nil {
			log.Printf("Warning: aggregation failed: %v", err)
			return
		}
		log.Printf("[summarize] wrote %d rows to %s", n, path)
	}
	rerun()

	debounce := time.NewTimer(debounceDelay)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-stop:
			return nil
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			// Only log files matter; the summary rewrite itself must not
			// retrigger the watcher.
			if !strings.HasSuffix(event.Name, ".log") {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			debounce.Reset(debounceDelay)
		case <-debounce.C:
			rerun()
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Warning: watcher error: %v", err)
		}
	}
}
