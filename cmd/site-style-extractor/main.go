package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitestyle "github.com/hellenic-development/site-style-extractor"
	"github.com/hellenic-development/site-style-extractor/pkg/browser"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const version = sitestyle.Version

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "site-style-extractor",
		Short:         "Extract a style guide from a live website",
		Long:          "Renders a website in headless Chrome at common breakpoints and extracts colors, fonts, spacing, shadows and per-element computed styles",
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "site-style-extractor version %s\n", version)
		},
	}

	rootCmd.AddCommand(newRunCmd(), versionCmd)
	return rootCmd
}

func newRunCmd() *cobra.Command {
	var v *viper.Viper

	cmd := &cobra.Command{
		Use:   "run <url> [output-dir]",
		Short: "Extract styles, screenshots and a style guide from <url>",
		Example: "  site-style-extractor run https://example.com\n" +
			"  site-style-extractor run https://example.com ./site-copy-example --breakpoints mobile,desktop",
		Args: validateArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid; later failures are not usage errors.
			cmd.SilenceUsage = true
			return run(cmd, v, args)
		},
	}

	cmd.Flags().Duration("timeout", sitestyle.DefaultNavigationTimeout, "Navigation timeout per breakpoint")
	cmd.Flags().String("breakpoints", "", "Comma-separated breakpoint names to analyze (default all)")
	cmd.Flags().Bool("headless", true, "Run Chrome without a window")
	cmd.Flags().Bool("no-sandbox", true, "Disable the Chrome sandbox (needed in most containers)")
	cmd.Flags().String("chrome-path", "", "Path to the Chrome/Chromium binary (default: search PATH)")

	v = newConfig(cmd.Flags())

	return cmd
}

// newConfig layers SITESTYLE_<FLAG> environment variables under the command line flags,
// e.g. SITESTYLE_CHROME_PATH for --chrome-path.
func newConfig(flags *pflag.FlagSet) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("SITESTYLE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(flags)
	return v
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: %s", cmd.UseLine())
	}
	if _, err := browser.ParseTargetURL(args[0]); err != nil {
		return err
	}
	return nil
}

func run(cmd *cobra.Command, v *viper.Viper, args []string) error {
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🎨 Site Style Extractor")
	cyan.Println("=======================")
	cyan.Println()

	opts := sitestyle.Options{
		URL:               args[0],
		Breakpoints:       sitestyle.ParseBreakpointNames(v.GetString("breakpoints")),
		NavigationTimeout: v.GetDuration("timeout"),
		Browser: browser.Config{
			Headless:  v.GetBool("headless"),
			NoSandbox: v.GetBool("no-sandbox"),
			ExecPath:  v.GetString("chrome-path"),
		},
		Logger: &cliLogger{},
	}
	if len(args) > 1 {
		opts.OutputDir = args[1]
	}

	result, err := sitestyle.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	// Display extracted stats.
	tokens := result.Tokens
	cyan.Println("\n📊 Extraction Summary:")
	fmt.Printf("  • Colors: %d\n", len(tokens.Colors))
	fmt.Printf("  • Font Families: %d\n", len(tokens.Fonts))
	fmt.Printf("  • Spacing Values: %d\n", len(tokens.Spacing))
	fmt.Printf("  • Shadows: %d\n", len(tokens.Shadows))
	for _, snap := range result.Snapshots {
		fmt.Printf("  • %s: %d styled elements\n", snap.Breakpoint, len(snap.Components))
	}

	green.Println("\n✨ Extraction complete!")

	fmt.Println("\nNext steps:")
	fmt.Printf("1. Review %s\n", filepath.Join(result.OutputDir, "STYLE_GUIDE.md"))
	fmt.Printf("2. Check data files in %s\n", filepath.Join(result.OutputDir, "data"))
	fmt.Printf("3. Compare screenshots in %s\n\n", filepath.Join(result.OutputDir, "original"))

	return nil
}

// cliLogger implements sitestyle.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
