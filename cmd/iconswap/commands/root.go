package commands

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/iconswap/internal/version"
	"github.com/arthur-debert/iconswap/pkg/config"
	"github.com/arthur-debert/iconswap/pkg/logging"
	"github.com/arthur-debert/iconswap/pkg/paths"
	"github.com/arthur-debert/iconswap/pkg/style"
)

// rootState holds flag values and lazily resolved dependencies shared by
// the subcommands.
type rootState struct {
	verbosity  int
	plain      bool
	iconsDir   string
	configFile string
}

func (s *rootState) load() (*config.Config, paths.Paths, error) {
	p := paths.New(s.iconsDir)

	configFile := s.configFile
	if configFile == "" {
		configFile = filepath.Join(p.ConfigDir(), config.ConfigFileName)
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}

	// A config-file icons_dir only applies when no flag or env override
	// already pinned the directory.
	if s.iconsDir == "" && cfg.IconsDir != "" {
		p = paths.New(cfg.IconsDir)
	}
	return cfg, p, nil
}

func (s *rootState) renderer() style.Renderer {
	return style.NewRenderer(s.plain)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	state := &rootState{}

	rootCmd := &cobra.Command{
		Use:     "iconswap",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(state.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&state.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&state.plain, "plain", false, MsgFlagPlain)
	rootCmd.PersistentFlags().StringVar(&state.iconsDir, "icons-dir", "", MsgFlagIconsDir)
	rootCmd.PersistentFlags().StringVar(&state.configFile, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(newListCmd(state))
	rootCmd.AddCommand(newApplyCmd(state))
	rootCmd.AddCommand(newRestoreCmd(state))
	rootCmd.AddCommand(newStatusCmd(state))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("iconswap version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion script",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate bash completion")
				}
			case "zsh":
				if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate zsh completion")
				}
			case "fish":
				if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
					log.Error().Err(err).Msg("Failed to generate fish completion")
				}
			case "powershell":
				if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate powershell completion")
				}
			}
		},
	}
}
