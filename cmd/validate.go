package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/session"
)

var validateCmd = &cobra.Command{
	Use:   "validate [level...]",
	Short: "Check that levels build without errors",
	Long: `Builds every level given in each of the requested load modes and reports
the first error of each. The exit status is non-zero when any level fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		modeNames, _ := cmd.Flags().GetStringSlice("modes")
		modes := make([]engine.LoadMode, 0, len(modeNames))
		for _, name := range modeNames {
			mode, err := engine.ParseLoadMode(name)
			if err != nil {
				return err
			}
			modes = append(modes, mode)
		}

		s, err := openSession(nil, nil)
		if err != nil {
			return err
		}

		failed := 0
		for _, arg := range args {
			level, err := session.ParseLevelRef(arg)
			if err != nil {
				fmt.Printf("%s %s: %v\n", failStyle.Render("FAIL"), arg, err)
				failed++
				continue
			}

			for _, mode := range modes {
				if err := s.Load(context.Background(), level, mode); err != nil {
					fmt.Printf("%s %s (%s): %v\n", failStyle.Render("FAIL"), level.ScenePath(), mode, err)
					failed++
					continue
				}
				fmt.Printf("%s %s (%s)\n", okStyle.Render("ok  "), level.ScenePath(), mode)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d builds failed", failed, len(args)*len(modes))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringSlice("modes", []string{"normal"}, "load modes to build in (normal, reset, load-saved)")
}
