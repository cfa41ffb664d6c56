package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/bmtidy/docs"
	"github.com/arthur-debert/bmtidy/internal/version"
	"github.com/arthur-debert/bmtidy/pkg/cobrax/topics"
	"github.com/arthur-debert/bmtidy/pkg/commands/dedupe"
	"github.com/arthur-debert/bmtidy/pkg/commands/flatten"
	"github.com/arthur-debert/bmtidy/pkg/commands/genconfig"
	"github.com/arthur-debert/bmtidy/pkg/config"
	"github.com/arthur-debert/bmtidy/pkg/logging"
	"github.com/arthur-debert/bmtidy/pkg/merge"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity int
		dryRun    bool
	)

	rootCmd := &cobra.Command{
		Use:     "bmtidy",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	// Disable automatic help command (we'll use our custom one from topics)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newDedupeCmd())
	rootCmd.AddCommand(newFlattenCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newTopicsCmd())

	// Initialize topic-based help system from the embedded docs
	opts := topics.Options{
		// Always use Glamour renderer for markdown files
		Renderer: topics.NewGlamourRenderer(),
	}
	if err := topics.InitializeWithOptions(rootCmd, docs.HelpTopics(), opts); err != nil {
		log.Debug().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// Execute runs bmtidy and exits the process on failure. Usage errors
// exit with status 2, everything else with 1.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(exitCode(err))
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("bmtidy version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}

func newDedupeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dedupe INPUT",
		Short:   MsgDedupeShort,
		Long:    MsgDedupeLong,
		Example: MsgDedupeExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// The config default applies unless the flag was given
			scope := cfg.Merge.Scope
			if cmd.Flags().Changed("merge-scope") {
				scope, _ = cmd.Flags().GetString("merge-scope")
			}
			output, _ := cmd.Flags().GetString("output")
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")

			result, err := dedupe.Dedupe(dedupe.DedupeOptions{
				InputPath:  args[0],
				OutputPath: output,
				Scope:      scope,
				Suffix:     cfg.Output.DedupeSuffix,
				Title:      cfg.Output.Title,
				DryRun:     dryRun,
			})
			if err != nil {
				return err
			}

			printDedupeResult(result)
			return nil
		},
	}

	cmd.Flags().StringP("merge-scope", "s", merge.ScopeSibling.String(), MsgFlagScope)
	cmd.Flags().StringP("output", "o", "", MsgFlagOutput)

	return cmd
}

func newFlattenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "flatten INPUT",
		Short:   MsgFlattenShort,
		Long:    MsgFlattenLong,
		Example: MsgFlattenExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			output, _ := cmd.Flags().GetString("output")
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")

			result, err := flatten.Flatten(flatten.FlattenOptions{
				InputPath:  args[0],
				OutputPath: output,
				Suffix:     cfg.Output.FlatSuffix,
				Title:      cfg.Output.Title,
				DryRun:     dryRun,
			})
			if err != nil {
				return err
			}

			printFlattenResult(result)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", MsgFlagOutput)

	return cmd
}

func newGenConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")

			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{
				Write:  write,
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}

			printGenConfigResult(result, write)
			return nil
		},
	}

	cmd.Flags().BoolP("write", "w", false, MsgFlagWrite)

	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: MsgTopicsShort,
		Long:  MsgTopicsLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf("help command not found")
		},
	}
}
