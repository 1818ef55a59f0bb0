package commands

import (
	"github.com/spf13/cobra"

	"cat-breed-catalog/internal/domain/breeds"
)

type levelFlag struct {
	name string
	dst  **int
	val  int
}

func queryCmd(s *session) *cobra.Command {
	var q breeds.Query
	levels := []*levelFlag{
		{name: "energy-level", dst: &q.EnergyLevel},
		{name: "grooming", dst: &q.Grooming},
		{name: "shedding-level", dst: &q.SheddingLevel},
		{name: "child-friendly", dst: &q.ChildFriendly},
		{name: "dog-friendly", dst: &q.DogFriendly},
		{name: "adaptability", dst: &q.Adaptability},
		{name: "health-issues", dst: &q.HealthIssues},
		{name: "intelligence", dst: &q.Intelligence},
		{name: "social-needs", dst: &q.SocialNeeds},
		{name: "stranger-friendly", dst: &q.StrangerFriendly},
	}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query breeds by attributes (does not touch filters)",
		RunE: func(cmd *cobra.Command, args []string) error {
			// solo restringen los niveles pasados explícitamente
			for _, l := range levels {
				if cmd.Flags().Changed(l.name) {
					*l.dst = &l.val
				}
			}

			ctrl := s.controller(quietView{s.out})
			if err := ctrl.LoadBreeds(cmd.Context()); err != nil {
				return err
			}
			s.out.RenderBreeds(ctrl.Query(q))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&q.Origin, "origin", "", "exact origin")
	f.StringVar(&q.Temperament, "temperament", "", "temperament contains (case-sensitive)")
	f.StringVar(&q.Coat, "coat", "", "exact coat")
	f.Float64Var(&q.MinWeight, "min-weight", 0, "minimum weight (kg)")
	f.Float64Var(&q.MaxWeight, "max-weight", 0, "maximum weight (kg), 0 = no limit")
	f.IntVar(&q.MinLifeSpan, "min-life", 0, "minimum life span (years)")
	f.IntVar(&q.MaxLifeSpan, "max-life", 0, "maximum life span (years), 0 = no limit")
	for _, l := range levels {
		f.IntVar(&l.val, l.name, 0, "level 1-5")
	}
	return cmd
}
