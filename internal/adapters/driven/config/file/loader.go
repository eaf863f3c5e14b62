package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
	"github.com/custodia-labs/doc-doctor/internal/core/ports/driven"
	"github.com/custodia-labs/doc-doctor/internal/logger"
)

const (
	// AppDir is the application directory under the user config directory.
	AppDir = "doc-doctor"
	// UserFileName is the base name of the user configuration file.
	UserFileName = "config"
	// ProjectFileName is the base name of the project configuration file.
	ProjectFileName = ".doc-doctor"
)

// Options control configuration discovery.
type Options struct {
	// UserDir overrides <user config dir>/doc-doctor.
	UserDir string
	// StartDir is where the upward project search begins. Defaults to the
	// working directory.
	StartDir string
	// File is an explicit configuration file that replaces the project layer.
	File string
}

// Loaded is a validated configuration together with where it came from.
type Loaded struct {
	cfg           *domain.Config
	usingDefaults bool

	// Sources lists the files that were read, lowest precedence first.
	Sources []string
	// Err is the reason the files were rejected, if they were.
	Err error
}

// Ensure Loaded implements the interface.
var _ driven.ConfigProvider = (*Loaded)(nil)

// Config returns the validated configuration.
func (l *Loaded) Config() *domain.Config {
	return l.cfg
}

// UsingDefaults reports whether the files were rejected in favour of defaults.
func (l *Loaded) UsingDefaults() bool {
	return l.usingDefaults
}

// Load discovers, validates and merges every configuration layer.
// Failures are logged and replaced by the built-in defaults.
func Load(opts Options) *Loaded {
	cfg, sources, err := load(opts)
	if err != nil {
		logger.Error("configuration rejected, using built-in defaults: %v", err)
		return &Loaded{
			cfg:           domain.DefaultConfig(),
			usingDefaults: true,
			Sources:       sources,
			Err:           err,
		}
	}
	return &Loaded{cfg: cfg, Sources: sources}
}

func load(opts Options) (*domain.Config, []string, error) {
	var readers []*viper.Viper

	user, err := userViper(opts.UserDir)
	if err != nil {
		return nil, nil, err
	}
	if user != nil {
		readers = append(readers, user)
	}

	project, err := projectViper(opts)
	if err != nil {
		return nil, nil, err
	}
	if project != nil {
		readers = append(readers, project)
	}

	defaults := domain.DefaultConfig()
	merged := defaults
	sources := make([]string, 0, len(readers))
	for _, v := range readers {
		path := v.ConfigFileUsed()
		sources = append(sources, path)

		layer, err := readLayer(v)
		if err != nil {
			return nil, sources, err
		}

		alone, err := layer.apply(defaults)
		if err != nil {
			return nil, sources, fmt.Errorf("%s: %w", path, err)
		}
		if err := alone.Validate(); err != nil {
			return nil, sources, fmt.Errorf("%s: %w", path, err)
		}

		if merged, err = layer.apply(merged); err != nil {
			return nil, sources, fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("config: loaded %s", path)
	}

	if err := merged.Validate(); err != nil {
		return nil, sources, fmt.Errorf("merged configuration: %w", err)
	}
	return merged, sources, nil
}

// userViper returns a reader for the user file, or nil when there is none.
func userViper(dir string) (*viper.Viper, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			logger.Debug("config: no user config directory: %v", err)
			return nil, nil
		}
		dir = filepath.Join(base, AppDir)
	}

	v := viper.New()
	v.SetConfigName(UserFileName)
	v.AddConfigPath(dir)
	return readIn(v)
}

// projectViper returns a reader for the explicit file, or for the nearest
// project file above StartDir, or nil when there is neither.
func projectViper(opts Options) (*viper.Viper, error) {
	v := viper.New()
	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", opts.File, err)
		}
		return v, nil
	}

	start := opts.StartDir
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		start = wd
	}

	dirs, err := ancestors(start)
	if err != nil {
		return nil, err
	}
	v.SetConfigName(ProjectFileName)
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}
	return readIn(v)
}

func readIn(v *viper.Viper) (*viper.Viper, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", v.ConfigFileUsed(), err)
	}
	return v, nil
}

// ancestors returns dir and each of its parents, nearest first.
func ancestors(dir string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}
	var dirs []string
	for {
		dirs = append(dirs, abs)
		parent := filepath.Dir(abs)
		if parent == abs {
			return dirs, nil
		}
		abs = parent
	}
}
