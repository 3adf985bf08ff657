package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ttcli/tt/internal/core/project"
	"github.com/ttcli/tt/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "tt [DIRECTORY]",
	Short: "Scaffold a new frontend project from a bundled template",
	Long: `tt creates a new frontend project from the templates installed next to it.

It asks for a target directory (unless one is given), a language, a
framework and a package manager, copies the matching template into the
target and prints the commands to run next.

Examples:
  tt                 Ask for the project name
  tt my-app          Create ./my-app
  tt .               Scaffold into the current directory`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version.GetVersion(),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runInit,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("tt %s\n", version.GetFullVersion()))
}

// @MX:ANCHOR: Execute is the main entry point for the tt CLI and its only error handler
// @MX:REASON: called from cmd/tt/main.go; every failure in the flow surfaces here
// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	return executeRoot()
}

// executeRoot runs rootCmd against the current dependencies and reports
// any failure on the command's error writer.
func executeRoot() error {
	err := rootCmd.Execute()
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// runInit drives one scaffolding run from the command line.
func runInit(cmd *cobra.Command, args []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	opts := project.InitOptions{WorkDir: workDir}
	if len(args) == 1 {
		opts.Target = args[0]
		opts.HasTarget = true
	}

	initializer := project.NewInitializer(deps.Prompter, deps.Templates, cmd.OutOrStdout(), deps.Logger)
	if progress := deps.Progress; progress != nil {
		initializer.SetSpinner(func(title string) project.Activity {
			return progress.Spinner(title)
		})
	}
	initializer.SetHighlight(highlight)

	_, err = initializer.Run(cmd.Context(), opts)
	return err
}

// reportError prints err as a single styled line. Both cancellation
// kinds collapse to the same message.
func reportError(w io.Writer, err error) {
	if isCanceled(err) {
		_, _ = fmt.Fprintf(w, "%s %s\n", symError(), cliError.Render("Operation canceled"))
		return
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", symError(), cliError.Render(err.Error()))
}

func isCanceled(err error) bool {
	return errors.Is(err, project.ErrInputCanceled) || errors.Is(err, project.ErrOverwriteDeclined)
}
