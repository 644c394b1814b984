package cmd

import (
	"context"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/session"
)

// barProgress shows the loading progress of a build on a terminal bar.
type barProgress struct {
	bar *progressbar.ProgressBar
}

func newBarProgress(description string) *barProgress {
	return &barProgress{bar: progressbar.Default(100, description)}
}

func (p *barProgress) SetProgress(fraction float32, text string) {
	if text != "" {
		p.bar.Describe(text)
	}
	_ = p.bar.Set(int(fraction * 100))
}

var buildCmd = &cobra.Command{
	Use:   "build [level]",
	Short: "Build a level and print a summary of the scene",
	Long: `Parses a level file and runs every line through the command table.
The level is either a path ending in .txt or <category> <chapter> <rank>,
for example "missions 1 2" or "freemissions/3/1".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := session.ParseLevelRef(args[0])
		if err != nil {
			return err
		}
		modeName, _ := cmd.Flags().GetString("mode")
		mode, err := engine.ParseLoadMode(modeName)
		if err != nil {
			return err
		}
		quiet, _ := cmd.Flags().GetBool("quiet")

		var progress engine.ProgressReporter
		if !quiet {
			progress = newBarProgress(fmt.Sprintf("Loading %s", level.ScenePath()))
		}
		s, err := openSession(progress, nil)
		if err != nil {
			return err
		}
		if err := s.Load(context.Background(), level, mode); err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(renderSummary(s))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().String("mode", "normal", "load mode: normal, reset or load-saved")
	buildCmd.Flags().BoolP("quiet", "q", false, "do not show the progress bar")
}
