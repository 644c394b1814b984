package engine

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/colobot/colobot-sub009/internal/condition"
	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/scoreboard"
)

// Background is the sky gradient committed to the renderer once the level
// has been read.
type Background struct {
	Image     string     `json:"image,omitempty" yaml:"image,omitempty"`
	Up        data.Color `json:"up" yaml:"up"`
	Down      data.Color `json:"down" yaml:"down"`
	CloudUp   data.Color `json:"cloud_up" yaml:"cloud_up"`
	CloudDown data.Color `json:"cloud_down" yaml:"cloud_down"`
	Full      bool       `json:"full" yaml:"full"`
}

// AudioTrack is a music file and whether it loops.
type AudioTrack struct {
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
	Repeat bool   `json:"repeat" yaml:"repeat"`
}

// TokenBounds is how many times a token may appear in a player's program.
// -1 means unbounded.
type TokenBounds struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Viewpoint is one entry of the level's camera shortcut list.
type Viewpoint struct {
	Eye    mgl32.Vec3 `json:"eye" yaml:"eye"`
	LookAt mgl32.Vec3 `json:"lookat" yaml:"lookat"`
	Button int        `json:"button" yaml:"button"`
}

// NewScript is a script template offered when the player creates a program
// on an object of Type.
type NewScript struct {
	Type data.ObjectType `json:"type" yaml:"type"`
	Name string          `json:"name" yaml:"name"`
}

// Satcom documents shown by the in-game help screens.
type Satcom struct {
	Instructions string `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	Satellite    string `json:"satellite,omitempty" yaml:"satellite,omitempty"`
	Loading      string `json:"loading,omitempty" yaml:"loading,omitempty"`
	Help         string `json:"help,omitempty" yaml:"help,omitempty"`
	Solution     string `json:"solution,omitempty" yaml:"solution,omitempty"`
	Immediate    bool   `json:"immediate" yaml:"immediate"`
	Locked       bool   `json:"locked" yaml:"locked"`
}

// MissionTimer measures the play time shown to the player.
type MissionTimer struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Started bool    `json:"started" yaml:"started"`
	Time    float32 `json:"time" yaml:"time"`
}

// World is the scene under construction, and the live scene once the build
// returns.
type World struct {
	// Unit converts level distances into world space.
	Unit float32 `json:"unit" yaml:"unit"`

	// Level description
	Title       string           `json:"title,omitempty" yaml:"title,omitempty"`
	Resume      string           `json:"resume,omitempty" yaml:"resume,omitempty"`
	ScriptName  string           `json:"script_name,omitempty" yaml:"script_name,omitempty"`
	ScriptFile  string           `json:"script_file,omitempty" yaml:"script_file,omitempty"`
	Satcom      Satcom           `json:"satcom" yaml:"satcom"`
	EndingWin   string           `json:"ending_win,omitempty" yaml:"ending_win,omitempty"`
	EndingLost  string           `json:"ending_lost,omitempty" yaml:"ending_lost,omitempty"`
	MissionType data.MissionType `json:"mission_type" yaml:"mission_type"`

	// Level tuning
	TracePrecision  float32 `json:"trace_precision" yaml:"trace_precision"`
	Shortcuts       bool    `json:"shortcuts" yaml:"shortcuts"`
	MagnifyDamage   float32 `json:"magnify_damage" yaml:"magnify_damage"`
	NuclearCapacity float32 `json:"nuclear_capacity" yaml:"nuclear_capacity"`
	CellCapacity    float32 `json:"cell_capacity" yaml:"cell_capacity"`
	MessageDelay    float32 `json:"message_delay" yaml:"message_delay"`

	// Appearance
	Background   Background         `json:"background" yaml:"background"`
	VehicleColor map[int]data.Color `json:"vehicle_color" yaml:"vehicle_color"`
	AlienColor   data.Color         `json:"alien_color" yaml:"alien_color"`
	GreenColor   data.Color         `json:"green_color" yaml:"green_color"`
	ColorsDirty  bool               `json:"-" yaml:"-"`

	// Audio
	MainTrack   AudioTrack                        `json:"main_track" yaml:"main_track"`
	SatcomTrack AudioTrack                        `json:"satcom_track" yaml:"satcom_track"`
	EditorTrack AudioTrack                        `json:"editor_track" yaml:"editor_track"`
	AudioChange []*condition.AudioChangeCondition `json:"-" yaml:"-"`

	// Technology
	Build          data.BuildFlag            `json:"build" yaml:"build"`
	ResearchEnable data.ResearchFlag         `json:"research_enable" yaml:"research_enable"`
	ResearchDone   map[int]data.ResearchFlag `json:"research_done" yaml:"research_done"`
	NewScripts     []NewScript               `json:"new_scripts,omitempty" yaml:"new_scripts,omitempty"`
	Tokens         map[string]TokenBounds    `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	TeamNames      map[int]string            `json:"team_names,omitempty" yaml:"team_names,omitempty"`
	Viewpoints     []Viewpoint               `json:"viewpoints,omitempty" yaml:"viewpoints,omitempty"`

	// End of mission
	EndTake           []*condition.SceneEndCondition `json:"-" yaml:"-"`
	EndTakeWinDelay   float32                        `json:"end_take_win_delay" yaml:"end_take_win_delay"`
	EndTakeLostDelay  float32                        `json:"end_take_lost_delay" yaml:"end_take_lost_delay"`
	EndTakeTimeout    float32                        `json:"end_take_timeout" yaml:"end_take_timeout"`
	EndTakeResearch   data.ResearchFlag              `json:"end_take_research" yaml:"end_take_research"`
	EndTakeImmediate  bool                           `json:"end_take_immediate" yaml:"end_take_immediate"`
	TeamsImmediateWin bool                           `json:"teams_immediate_win" yaml:"teams_immediate_win"`
	MissionResult     condition.Result               `json:"mission_result" yaml:"mission_result"`
	ResultFromScript  bool                           `json:"result_from_script" yaml:"result_from_script"`
	TeamFinished      map[int]bool                   `json:"team_finished,omitempty" yaml:"team_finished,omitempty"`
	Scoreboard        *scoreboard.Scoreboard         `json:"-" yaml:"-"`
	MissionTimer      MissionTimer                   `json:"mission_timer" yaml:"mission_timer"`
	GameTime          float32                        `json:"game_time" yaml:"game_time"`

	// Objects placed by the current build
	Controller  Object `json:"-" yaml:"-"`
	Base        Object `json:"-" yaml:"-"`
	Selected    Object `json:"-" yaml:"-"`
	ObjectCount int    `json:"object_count" yaml:"object_count"`
	NextRank    int    `json:"-" yaml:"-"`
}

// NewWorld returns a world with every level setting at its default.
func NewWorld() *World {
	w := &World{}
	w.resetTransient()
	w.resetLevel()
	return w
}
