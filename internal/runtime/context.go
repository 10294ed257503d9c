// Package runtime provides application runtime context for Studypace.
package runtime

import (
	"os"

	"github.com/manav03panchal/studypace/internal/output"
	"github.com/manav03panchal/studypace/internal/progress"
	"github.com/manav03panchal/studypace/internal/storage"
)

// Context holds the application runtime context: the open database, the
// repositories over it, the reconciler, and the output formatter. All
// dependencies are wired here explicitly; nothing reaches for globals.
type Context struct {
	DB        *storage.DB
	Formatter *output.Formatter

	// Repositories
	MaterialRepo *storage.MaterialRepo
	TodoRepo     *storage.TodoRepo
	ProgressRepo *storage.ProgressRepo
	ConfigRepo   *storage.ConfigRepo

	// Write path
	Reconciler *progress.Reconciler

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		InMemory:  false,
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	// Check for environment variable override
	if envPath := os.Getenv("STUDYPACE_DATABASE"); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}

	// Open database
	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	// Create repositories
	materialRepo := storage.NewMaterialRepo(db)
	todoRepo := storage.NewTodoRepo(db)
	progressRepo := storage.NewProgressRepo(db)
	configRepo := storage.NewConfigRepo(db)

	// Wire the write path through the store port
	store := storage.NewPaceStore(todoRepo, materialRepo, progressRepo)
	reconciler := progress.NewReconciler(store)

	// Create formatter
	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		DB:           db,
		Formatter:    formatter,
		MaterialRepo: materialRepo,
		TodoRepo:     todoRepo,
		ProgressRepo: progressRepo,
		ConfigRepo:   configRepo,
		Reconciler:   reconciler,
		Debug:        opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// OwnerKey returns the configured owner key, creating one on first use.
func (c *Context) OwnerKey() (string, error) {
	cfg, err := c.ConfigRepo.Get()
	if err != nil {
		return "", err
	}
	return cfg.OwnerKey, nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// Debugf prints debug output if debug mode is enabled.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug {
		c.Formatter.Printf("[DEBUG] "+format+"\n", args...)
	}
}
