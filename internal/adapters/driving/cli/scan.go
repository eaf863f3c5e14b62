package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
	"github.com/custodia-labs/doc-doctor/internal/logger"
)

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Analyse every Markdown document under a directory",
	Long: `Walks the directory for *.md and *.markdown files, analyses each one
in parallel, and prints a table sorted by path. Files without a header are
reported as skipped. Hidden directories, dependency and build output
directories, and paths matched by the directory's .gitignore are not
scanned.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

var (
	scanWorkers int
	scanJSON    bool
)

func init() {
	scanCmd.Flags().IntVarP(&scanWorkers, "workers", "w", runtime.NumCPU(), "number of parallel workers")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(scanCmd)
}

// scanResult is the outcome for one file.
type scanResult struct {
	Path     string           `json:"path"`
	Analysis *domain.Analysis `json:"analysis,omitempty"`
	Skipped  bool             `json:"skipped,omitempty"`
	Error    string           `json:"error,omitempty"`
}

func runScan(cmd *cobra.Command, args []string) error {
	sb, err := services()
	if err != nil {
		return err
	}
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	files, err := collectMarkdown(root)
	if err != nil {
		return err
	}
	logger.Debug("scan: %d markdown files under %s", len(files), root)

	cache, err := newAnalysisCache(sb, defaultCacheSize)
	if err != nil {
		return err
	}
	results := scanFiles(cmd.Context(), cache, files, scanWorkers)

	if scanJSON {
		return printJSON(cmd, results)
	}
	printScan(cmd, results)
	return nil
}

// skipDirs are never entered, whatever .gitignore says.
var skipDirs = map[string]struct{}{
	"node_modules": {},
	"vendor":       {},
	"venv":         {},
	"__pycache__":  {},
	"build":        {},
	"dist":         {},
	"target":       {},
}

// collectMarkdown returns the Markdown files under root in lexical order.
// Paths matched by root/.gitignore are left out.
func collectMarkdown(root string) ([]string, error) {
	gi := loadGitignore(root)
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		name := d.Name()
		if d.IsDir() {
			if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if gi != nil && gi.MatchesPath(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}
		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}
		switch strings.ToLower(filepath.Ext(name)) {
		case ".md", ".markdown":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}

// loadGitignore compiles root/.gitignore, or returns nil if there is none.
func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	logger.Debug("scan: using %s", filepath.Join(root, ".gitignore"))
	return gi
}

// scanFiles analyses files with a bounded worker pool. Results are in the
// order of files.
func scanFiles(ctx context.Context, cache *analysisCache, files []string, workers int) []scanResult {
	if ctx == nil {
		ctx = context.Background()
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}

	results := make([]scanResult, len(files))
	work := make(chan int, len(files))
	for i := range files {
		work <- i
	}
	close(work)

	// The LRU is safe for concurrent use; the switchboard is too.
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = scanOne(ctx, cache, files[idx])
			}
		}()
	}
	wg.Wait()
	return results
}

func scanOne(ctx context.Context, cache *analysisCache, path string) scanResult {
	res := scanResult{Path: path}
	if err := ctx.Err(); err != nil {
		res.Error = err.Error()
		return res
	}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	a, _, err := cache.analyze(string(data))
	switch {
	case err == nil:
		res.Analysis = a
	case errors.Is(err, domain.ErrNoFrontmatter):
		res.Skipped = true
	default:
		res.Error = err.Error()
	}
	return res
}

func printScan(cmd *cobra.Command, results []scanResult) {
	if len(results) == 0 {
		cmd.Println("No Markdown files found.")
		return
	}

	st := newStyler(cmd.OutOrStdout())
	cmd.Println(st.heading("HEALTH  USEFUL  STUBS  BLOCKING  PATH"))

	var analysed, skipped, failed int
	var total float64
	for _, r := range results {
		switch {
		case r.Skipped:
			skipped++
			cmd.Printf("%s  %s\n", st.dim(fmt.Sprintf("%-38s", "skipped (no header)")), r.Path)
		case r.Error != "":
			failed++
			cmd.Printf("%s  %s\n", st.bad(fmt.Sprintf("%-38s", "error")), r.Path)
			cmd.Printf("    %s\n", st.dim(r.Error))
		default:
			analysed++
			a := r.Analysis
			total += a.Health.Score
			useful := "no"
			if a.Dimensions.Usefulness.IsUseful {
				useful = "yes"
			}
			cmd.Printf("%s    %-6s  %5d  %8d  %s\n",
				st.score(a.Health.Score), useful, a.Stubs.Total, a.Stubs.Blocking, r.Path)
		}
	}

	cmd.Println()
	cmd.Printf("%d analysed, %d skipped, %d failed", analysed, skipped, failed)
	if analysed > 0 {
		cmd.Printf(", mean health %s", formatScore(total/float64(analysed)))
	}
	cmd.Println()
}
