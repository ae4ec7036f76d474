package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/hhcfg/internal/adapters/progress"
	"github.com/trebuchet-org/hhcfg/internal/app"
	"github.com/trebuchet-org/hhcfg/internal/config"
	"github.com/trebuchet-org/hhcfg/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// rootOptions holds the process-level inputs of the command tree
type rootOptions struct {
	lookup config.LookupFunc
	logOut io.Writer
}

// NewRootCmd creates the root command reading the process environment
func NewRootCmd() *cobra.Command {
	return newRootCmd(rootOptions{
		lookup: config.OSLookup,
		logOut: os.Stderr,
	})
}

func newRootCmd(opts rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hhcfg",
		Short: "Toolchain configuration for smart contract projects",
		Long: `hhcfg assembles the compiler, network, path and code generation settings
of a smart contract project from RPC_URL, DEPLOYER_PRIVATE_KEY and fixed defaults,
and emits them for the build, test and deploy toolchain.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, _ := cmd.Flags().GetString("project-root")

			// Set up viper
			v, err := config.SetupViper(projectRoot, cmd.Flags())
			if err != nil {
				return err
			}

			lookup := opts.lookup
			if v.GetBool("debug") {
				lookup = withLogLevel(lookup, "debug")
			}

			interactive := !v.GetBool("non_interactive") && !v.GetBool("json") && !color.NoColor
			var sink usecase.ProgressSink = usecase.NopProgress{}
			if interactive {
				sink = progress.NewSpinnerSink(cmd.ErrOrStderr(), true)
			} else {
				// No terminal means no prompts either
				v.Set("non_interactive", true)
			}

			// Initialize app with DI
			appInstance, err := app.InitApp(v, lookup, sink, opts.logOut)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// PostRun is skipped when RunE fails; Execute releases the timer then
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable spinners and colors")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().Bool("strict", false, "Refuse the placeholder deployer key on remote networks")
	rootCmd.PersistentFlags().String("project-root", "", "Project root (defaults to the nearest directory with a project marker)")
	rootCmd.PersistentFlags().StringSlice("env-file", nil, "Extra dotenv files to load before .env and .env.local")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "network",
		Title: "Network Commands",
	})

	showCmd := NewShowCmd()
	showCmd.GroupID = "main"
	rootCmd.AddCommand(showCmd)

	exportCmd := NewExportCmd()
	exportCmd.GroupID = "main"
	rootCmd.AddCommand(exportCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "network"
	rootCmd.AddCommand(networksCmd)

	forkCmd := NewForkCmd()
	forkCmd.GroupID = "network"
	rootCmd.AddCommand(forkCmd)

	// Version command
	versionCmd := NewVersionCmd()
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// Execute runs cmd under a context that is cancelled on return, releasing the
// command timeout on every exit path.
func Execute(ctx context.Context, cmd *cobra.Command) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	return cmd.ExecuteContext(ctx)
}

// withLogLevel forces HHCFG_LOG_LEVEL to level
func withLogLevel(lookup config.LookupFunc, level string) config.LookupFunc {
	return func(name string) (string, bool) {
		if name == "HHCFG_LOG_LEVEL" {
			return level, true
		}
		return lookup(name)
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}

// parseFormat validates a --format value
func parseFormat(value string, allowed ...usecase.ExportFormat) (usecase.ExportFormat, error) {
	for _, f := range allowed {
		if string(f) == value {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format '%s' (expected one of %v)", value, allowed)
}
