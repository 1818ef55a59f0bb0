package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func detailsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "details <breed-id>",
		Short: "Show one breed with its image URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := s.controller(quietView{s.out})
			if err := ctrl.LoadBreeds(cmd.Context()); err != nil {
				return err
			}
			if _, err := ctrl.ShowDetailsByID(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return nil
		},
	}
}
