package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/colobot/colobot-sub009/internal/persistence"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the player's progress and free game unlocks",
	RunE: func(cmd *cobra.Command, args []string) error {
		player := viper.GetString("profile")
		slots := persistence.NewSlotManager(viper.GetString("save_dir"))
		p, err := persistence.LoadProfile(player, slots.ProfilePath(player))
		if err != nil {
			return err
		}

		passed := lo.Keys(p.Passed)
		sort.Strings(passed)

		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		if err := enc.Encode(map[string]any{
			"player":   p.Player,
			"passed":   passed,
			"research": p.FreeGameResearchUnlock().Names(),
			"build":    p.FreeGameBuildUnlock().Names(),
		}); err != nil {
			return fmt.Errorf("failed to print profile: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
