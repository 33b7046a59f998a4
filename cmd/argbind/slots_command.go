package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hashicorp/go-argbind"
	"github.com/hashicorp/go-argbind/internal/render"
)

func newSlotsCommand(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "slots",
		Short: "List the slots of the sample configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg sampleConfig
			reg, err := argbind.BuildRegistry(&cfg, s.options(cmd.ErrOrStderr())...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.Slots(reg, s.prefix))
			return nil
		},
	}
}
