package cli

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/doc-doctor/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-analyse a document whenever it changes",
	Long: `Prints a one-line summary after every change to the file. Writes that
leave the content unchanged are ignored. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// watchDebounce is how long a file must be quiet before it is re-read.
const watchDebounce = 100 * time.Millisecond

// docWatcher reports changes to one file. It watches the parent directory
// so that editors which replace the file by rename are followed.
type docWatcher struct {
	path    string
	changes chan struct{}
	done    chan struct{}
	fw      *fsnotify.Watcher
}

func newDocWatcher(path string) (*docWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &docWatcher{
		path:    abs,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
		fw:      fw,
	}
	go w.loop()
	return w, nil
}

// Changes delivers one value per quiet period after the file changed.
func (w *docWatcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops watching.
func (w *docWatcher) Close() {
	w.fw.Close()
	<-w.done
}

func (w *docWatcher) loop() {
	defer close(w.done)

	var pending time.Time
	ticker := time.NewTicker(watchDebounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case <-ticker.C:
			if pending.IsZero() || time.Since(pending) < watchDebounce {
				continue
			}
			pending = time.Time{}
			select {
			case w.changes <- struct{}{}:
			default:
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch: %v", err)
		}
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	sb, err := services()
	if err != nil {
		return err
	}
	path := args[0]

	cache, err := newAnalysisCache(sb, defaultCacheSize)
	if err != nil {
		return err
	}
	w, err := newDocWatcher(path)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st := newStyler(cmd.OutOrStdout())
	var last *[sha256.Size]byte
	report := func() {
		data, err := os.ReadFile(path)
		if err != nil {
			cmd.Printf("%s %s\n", stamp(), st.bad(err.Error()))
			return
		}
		a, cached, err := cache.analyze(string(data))
		if err != nil {
			cmd.Printf("%s %s\n", stamp(), st.bad(err.Error()))
			last = nil
			return
		}
		key := contentKey(data)
		if cached && last != nil && *last == key {
			return
		}
		last = &key
		cmd.Printf("%s health %s  useful %-5t stubs %d (%d blocking)\n",
			stamp(), st.score(a.Health.Score), a.Dimensions.Usefulness.IsUseful,
			a.Stubs.Total, a.Stubs.Blocking)
	}

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", path)
	report()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.Changes():
			report()
		}
	}
}

func stamp() string {
	return time.Now().Format("15:04:05")
}
