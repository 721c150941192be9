package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/iconswap/pkg/commands/apply"
	"github.com/arthur-debert/iconswap/pkg/commands/list"
	"github.com/arthur-debert/iconswap/pkg/commands/restore"
	"github.com/arthur-debert/iconswap/pkg/commands/status"
	"github.com/arthur-debert/iconswap/pkg/errors"
)

func newListCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Long:  MsgListLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, p, err := state.load()
			if err != nil {
				return err
			}
			result := list.ListPacks(list.ListPacksOptions{Paths: p})
			cmd.Println(state.renderer().RenderPackList(result.Packs, result.ActivePack))
			return nil
		},
	}
}

func newApplyCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:     "apply <pack>",
		Short:   MsgApplyShort,
		Long:    MsgApplyLong,
		Example: MsgApplyExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, p, err := state.load()
			if err != nil {
				return err
			}
			renderer := state.renderer()

			progress := newSignalSink(cmd.OutOrStdout(), renderer)
			defer progress.Close()

			result, err := apply.ApplyPack(context.Background(), apply.ApplyPackOptions{
				PackRef:  args[0],
				Config:   cfg,
				Paths:    p,
				Progress: progress,
			})
			if err != nil {
				if errors.IsCode(err, errors.ErrMappingEmpty) {
					cmd.Println(renderer.RenderNotice(MsgNothingToDo))
					return nil
				}
				cmd.PrintErrln(renderer.RenderError(err))
				return err
			}

			cmd.Println(renderer.RenderOutcome(result.Outcome))
			return nil
		},
	}
}

func newRestoreCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: MsgRestoreShort,
		Long:  MsgRestoreLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, p, err := state.load()
			if err != nil {
				return err
			}
			renderer := state.renderer()

			result, err := restore.Restore(restore.RestoreOptions{Paths: p})
			if err != nil {
				if errors.IsCode(err, errors.ErrNoBackup) {
					cmd.Println(renderer.RenderNotice(MsgNoBackup))
					return nil
				}
				cmd.PrintErrln(renderer.RenderError(err))
				return err
			}

			cmd.Println(renderer.RenderNotice(fmt.Sprintf(MsgRestored, result.RestoredCount)))
			return nil
		},
	}
}

func newStatusCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: MsgStatusShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, p, err := state.load()
			if err != nil {
				return err
			}
			result := status.Status(status.StatusOptions{Paths: p})

			cmd.Printf("Active pack:     %s\n", result.ActivePack)
			cmd.Printf("Backup present:  %t\n", result.HasBackup)
			cmd.Printf("Installed icons: %d\n", result.InstalledIcons)
			cmd.Printf("Available packs: %d\n", result.PackCount)
			return nil
		},
	}
}
