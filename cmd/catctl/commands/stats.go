package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func statsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog statistics and insights",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := s.controller(quietView{s.out})
			if err := ctrl.LoadBreeds(cmd.Context()); err != nil {
				return err
			}

			s.out.RenderStats(ctrl.Stats())
			in := ctrl.Insights()
			s.out.Message("Most common temperament: %s", in.MostCommonTemperament)
			s.out.Message("Most common coat: %s", in.MostCommonCoat)
			s.out.Message("Origins: %s", strings.Join(in.Origins, ", "))
			ctrl.LogState()
			return nil
		},
	}
}
