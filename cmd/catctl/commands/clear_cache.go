package commands

import (
	"github.com/spf13/cobra"
)

func clearCacheCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-cache",
		Short: "Clear the local cache and reload from the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := s.controller(quietView{s.out})
			if err := ctrl.ClearCache(cmd.Context()); err != nil {
				return err
			}
			s.out.Message("Cache cleared, %d breeds reloaded", ctrl.BreedCount())
			return nil
		},
	}
}
