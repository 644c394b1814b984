package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/mission"
	"github.com/colobot/colobot-sub009/internal/session"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [level]",
	Short: "Run the end of mission checks of a level frame by frame",
	Long: `Builds a level, or restores a save slot with --slot, then advances game
time frame by frame until the mission is won or lost. Nothing moves on its own,
so this shows how a level ends from its initial layout. A won mission is
recorded in the player's profile.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		frames, _ := cmd.Flags().GetInt("frames")
		dt, _ := cmd.Flags().GetFloat32("dt")
		slot, _ := cmd.Flags().GetString("slot")
		journalPath, _ := cmd.Flags().GetString("journal")

		if slot == "" && len(args) == 0 {
			return fmt.Errorf("must specify either [level] or --slot")
		}

		var journal *session.Journal
		if journalPath != "" {
			var err error
			if journal, err = session.OpenJournal(journalPath); err != nil {
				return err
			}
			defer journal.Close()
		}

		s, err := openSession(nil, journal)
		if err != nil {
			return err
		}

		ctx := context.Background()
		if slot != "" {
			err = s.Restore(ctx, slot)
		} else {
			var level engine.LevelRef
			if level, err = session.ParseLevelRef(args[0]); err == nil {
				err = s.Load(ctx, level, engine.ModeNormal)
			}
		}
		if err != nil {
			return err
		}

		result, err := s.Run(frames, dt)
		if err != nil {
			return err
		}

		style := keyStyle
		switch result {
		case mission.Won:
			style = okStyle
		case mission.Lost, mission.LostQuick:
			style = failStyle
		}
		fmt.Println(renderSummary(s))
		fmt.Printf("%s after %.2fs of game time\n", style.Render(result.String()), s.World().GameTime)
		for team := range s.World().TeamFinished {
			fmt.Printf("  %s finished\n", s.World().TeamName(team))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().Int("frames", 600, "maximum number of frames to run")
	simulateCmd.Flags().Float32("dt", 0.1, "game time per frame in seconds")
	simulateCmd.Flags().String("slot", "", "restore this save slot instead of building a level")
	simulateCmd.Flags().String("journal", "", "append mission events to this JSONL file")
}
