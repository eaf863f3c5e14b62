// Command doc-doctor assesses and edits the metadata of Markdown documents.
//
// Usage:
//
//	doc-doctor analyze guide.md     # Score one document
//	doc-doctor stubs list guide.md  # List its stubs
//	doc-doctor scan docs/           # Score every document under a directory
//	doc-doctor tui guide.md         # Browse and edit stubs interactively
//	doc-doctor mcp serve            # Start the MCP server (stdio transport)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/doc-doctor/internal/adapters/driven/codec/frontmatter"
	"github.com/custodia-labs/doc-doctor/internal/adapters/driven/config/file"
	"github.com/custodia-labs/doc-doctor/internal/adapters/driven/schema"
	"github.com/custodia-labs/doc-doctor/internal/adapters/driving/cli"
	"github.com/custodia-labs/doc-doctor/internal/core/ports/driving"
	"github.com/custodia-labs/doc-doctor/internal/core/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBuilder(buildSwitchboard)
	cli.SetStarterWriter(writeStarter)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// buildSwitchboard loads the layered configuration and wires the core.
func buildSwitchboard(configPath string) (driving.Switchboard, error) {
	loaded := file.Init(file.Options{File: configPath})
	codec := frontmatter.New()
	return services.NewSwitchboard(codec, codec, schema.NewProvider(), loaded), nil
}

// writeStarter writes the default configuration as a starter file.
func writeStarter(project bool, format string) (string, error) {
	f, err := file.ParseFormat(format)
	if err != nil {
		return "", err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	path, err := file.StarterPath(project, cwd, f)
	if err != nil {
		return "", err
	}
	if err := file.WriteStarter(path, f, nil); err != nil {
		return "", err
	}
	return path, nil
}
