package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/persistence"
	"github.com/colobot/colobot-sub009/internal/session"
)

func saveFormat() string {
	return fmt.Sprintf("scene %d.%d, stack %d", persistence.VersionMajor, persistence.VersionMinor, persistence.StackFormat)
}

var saveCmd = &cobra.Command{
	Use:   "save [level] [slot]",
	Short: "Build a level and write it to a save slot",
	Long: `Builds a level and saves the resulting scene into a slot of the current
player. The slot can then be restored with "simulate --slot".
With --list, prints the slots of the current player instead.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, _ := cmd.Flags().GetBool("list")
		if list {
			slots, err := persistence.NewSlotManager(viper.GetString("save_dir")).List(viper.GetString("profile"))
			if err != nil {
				return err
			}
			if len(slots) == 0 {
				fmt.Println("No saved games.")
			}
			for _, slot := range slots {
				fmt.Println(slot)
			}
			return nil
		}

		if len(args) != 2 {
			return fmt.Errorf("must specify [level] and [slot]")
		}
		level, err := session.ParseLevelRef(args[0])
		if err != nil {
			return err
		}

		s, err := openSession(nil, nil)
		if err != nil {
			return err
		}
		if err := s.Load(context.Background(), level, engine.ModeNormal); err != nil {
			return err
		}

		path, err := s.Save(args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Saved %s to %s (%s)\n", level.ScenePath(), path, saveFormat())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
	saveCmd.Flags().BoolP("list", "l", false, "list the save slots of the player")
}
