package commands

import (
	"github.com/spf13/cobra"

	"cat-breed-catalog/internal/domain/breeds"
	"cat-breed-catalog/internal/domain/catalog"
)

func listCmd(s *session) *cobra.Command {
	var (
		filters catalog.Filters
		sortBy  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List breeds (cache first), optionally filtered and sorted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := s.controller(quietView{s.out})
			ctrl.SetFilters(filters)
			if err := ctrl.LoadBreeds(cmd.Context()); err != nil {
				return err
			}
			if sortBy != "" {
				ctrl.SortBreeds(breeds.SortCriteria(sortBy))
			}
			s.out.RenderBreeds(ctrl.Filtered())
			return nil
		},
	}

	cmd.Flags().StringVar(&filters.Breed, "breed", "", "name contains (case-insensitive)")
	cmd.Flags().StringVar(&filters.Origin, "origin", "", "origin contains (case-insensitive)")
	cmd.Flags().StringVar(&filters.Weight, "weight", "", "minimum weight in kg")
	cmd.Flags().StringVar(&sortBy, "sort", "", "name-asc | name-desc | life-asc | life-desc")
	return cmd
}
