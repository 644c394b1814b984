package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/scoreboard"
	"github.com/colobot/colobot-sub009/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")).Padding(0, 1)
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#874BFD")).Padding(0, 1)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F25D94"))
)

// sceneSummary is what inspect prints about a built scene.
type sceneSummary struct {
	Title       string                 `yaml:"title"`
	Level       engine.LevelRef        `yaml:"level"`
	MissionType string                 `yaml:"mission_type"`
	Unit        float32                `yaml:"unit"`
	Objects     map[string]int         `yaml:"objects"`
	Selected    string                 `yaml:"selected,omitempty"`
	Build       []string               `yaml:"build,omitempty"`
	Research    []string               `yaml:"research_done,omitempty"`
	EndTakes    int                    `yaml:"end_takes"`
	Timeout     float32                `yaml:"timeout"`
	Teams       map[int]string         `yaml:"teams,omitempty"`
	Scores      []scoreboard.TeamScore `yaml:"scores,omitempty"`
	Checks      map[string]any         `yaml:"checks,omitempty"`
}

func summarize(s *session.Session) sceneSummary {
	w := s.World()
	sum := sceneSummary{
		Title:       w.Title,
		Level:       s.Level(),
		MissionType: w.MissionType.String(),
		Unit:        w.Unit,
		Objects: lo.CountValuesBy(s.Sim().Objects.AllObjects(), func(o engine.Object) string {
			return data.FromObjectType(o.Type())
		}),
		Build:    w.Build.Names(),
		Research: w.ResearchDone[0].Names(),
		EndTakes: len(w.EndTake),
		Timeout:  w.EndTakeTimeout,
		Teams:    w.TeamNames,
	}
	if w.Selected != nil {
		sum.Selected = data.FromObjectType(w.Selected.Type())
	}
	if w.Scoreboard != nil {
		sum.Scores = w.Scoreboard.SortedScores()
	}
	return sum
}

func row(key string, value any) string {
	return fmt.Sprintf("%s %v", keyStyle.Render(fmt.Sprintf("%-12s", key)), value)
}

func renderSummary(s *session.Session) string {
	sum := summarize(s)

	title := sum.Title
	if title == "" {
		title = sum.Level.ScenePath()
	}

	lines := []string{
		row("level", sum.Level.ScenePath()),
		row("type", sum.MissionType),
		row("unit", sum.Unit),
		row("end takes", sum.EndTakes),
	}
	if sum.Timeout >= 0 {
		lines = append(lines, row("timeout", sum.Timeout))
	}
	if sum.Selected != "" {
		lines = append(lines, row("selected", sum.Selected))
	}
	if len(sum.Build) > 0 {
		lines = append(lines, row("build", strings.Join(sum.Build, " ")))
	}
	if len(sum.Research) > 0 {
		lines = append(lines, row("research", strings.Join(sum.Research, " ")))
	}

	names := lo.Keys(sum.Objects)
	sort.Strings(names)
	objects := lo.Map(names, func(name string, _ int) string {
		return row(name, sum.Objects[name])
	})
	if len(objects) == 0 {
		objects = []string{keyStyle.Render("no objects")}
	}

	blocks := []string{
		titleStyle.Render(title),
		boxStyle.Render(strings.Join(lines, "\n")),
		boxStyle.Render(strings.Join(objects, "\n")),
	}
	if len(sum.Scores) > 0 {
		scores := lo.Map(sum.Scores, func(ts scoreboard.TeamScore, _ int) string {
			return row(s.World().TeamName(ts.Team), ts.Score.Points)
		})
		blocks = append(blocks, boxStyle.Render(strings.Join(scores, "\n")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [level]",
	Short: "Build a level and query the scene",
	Long: `Builds a level and prints its settings and objects. Each --expr is a CEL
expression evaluated against the scene, for example:

  roboscene inspect "missions 1 2" --expr "count('Me') == 1"
  roboscene inspect scene.txt --expr "objects.filter(o, o.team == 1).size()"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := session.ParseLevelRef(args[0])
		if err != nil {
			return err
		}
		exprs, _ := cmd.Flags().GetStringArray("expr")
		output, _ := cmd.Flags().GetString("output")

		s, err := openSession(nil, nil)
		if err != nil {
			return err
		}
		if err := s.Load(context.Background(), level, engine.ModeNormal); err != nil {
			return err
		}

		checks := make(map[string]any, len(exprs))
		for _, expr := range exprs {
			out, err := s.Eval(expr)
			if err != nil {
				return fmt.Errorf("failed to evaluate %q: %w", expr, err)
			}
			checks[expr] = out
		}

		switch output {
		case "yaml":
			sum := summarize(s)
			if len(checks) > 0 {
				sum.Checks = checks
			}
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(sum)
		case "", "text":
			fmt.Println(renderSummary(s))
			for _, expr := range exprs {
				fmt.Printf("%s %v\n", keyStyle.Render(expr+" =>"), checks[expr])
			}
			return nil
		}
		return fmt.Errorf("unknown output format %q", output)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringArray("expr", nil, "CEL expression to evaluate against the scene")
	inspectCmd.Flags().StringP("output", "o", "text", "output format: text or yaml")
}
