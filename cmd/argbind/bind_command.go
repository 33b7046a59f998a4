package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hashicorp/go-argbind"
	"github.com/hashicorp/go-argbind/internal/render"
)

func newBindCommand(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "bind [flags] -- [tokens...]",
		Short: "Bind tokens onto the sample configuration and report the result",
		Long: `Bind tokens onto the sample configuration and report the result.

Tokens after "--" are passed to the binder untouched. The exit status is 2
if any token could not be bound.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var cfg sampleConfig
			reg, err := argbind.BuildRegistry(&cfg, s.options(cmd.ErrOrStderr())...)
			if err != nil {
				return err
			}

			result := argbind.Map(args, reg, s.options(cmd.ErrOrStderr())...)
			fmt.Fprintln(out, render.Report(result, s.useColor(out)))

			for _, p := range reg.Properties() {
				fmt.Fprintf(out, "  %s = %s\n", p.Spec().ID(), formatValue(p))
			}

			if !result.Success() {
				return &exitError{Code: 2}
			}

			return nil
		},
	}
}
