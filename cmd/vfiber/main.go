// Command vfiber runs the vfiber demos: a headless render of the demo
// components and a live websocket server.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vfiber/internal/config"
	"github.com/vango-dev/vfiber/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd := rootCmd()
	if err := cmd.Execute(); err != nil {
		errors.Fprint(cmd.ErrOrStderr(), err, errorStyle(cmd))
		os.Exit(1)
	}
}

// errorStyle honors --no-color on top of NO_COLOR.
func errorStyle(cmd *cobra.Command) errors.Style {
	style := errors.StyleFromEnv()
	if off, _ := cmd.PersistentFlags().GetBool("no-color"); off {
		style.Color = false
	}
	return style
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vfiber",
		Short: "Fiber reconciler demos",
		Long: `vfiber renders declarative element trees through an incremental,
yieldable reconciler.

  • demo   renders a demo component headlessly, slice by slice
  • serve  streams live sessions to websocket clients`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("no-color", false, "Disable colored error output")
	root.PersistentFlags().StringP("config", "c", "", "Config file (default: vfiber.yaml/.yml/.json in the working directory)")

	root.AddCommand(
		demoCmd(),
		serveCmd(),
		versionCmd(),
	)
	return root
}

// loadConfig reads the --config file, or the working directory's config
// file when present, or the defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load(".")
		if errors.HasCode(err, errors.CodeConfigNotFound) {
			cfg, err = config.New(), nil
		}
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
