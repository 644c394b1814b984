package engine

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/colobot/colobot-sub009/internal/condition"
	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/parser"
)

// Object is a world object as the builder sees it.
type Object interface {
	condition.Object
	// Read lets the object pick up its own attributes from its CreateObject
	// line.
	Read(line *parser.Line, unit float32) error
	Selectable() bool
	ProgramStorageIndex() int
	SetProgramStorageIndex(index int)
}

// Program is a script attached to an object by its CreateObject line.
type Program struct {
	Path     string `json:"path" yaml:"path"`
	ReadOnly bool   `json:"read_only" yaml:"read_only"`
	Runnable bool   `json:"runnable" yaml:"runnable"`
}

// CreateParams is everything an object needs to be instantiated.
type CreateParams struct {
	Type    data.ObjectType
	Pos     mgl32.Vec3
	Angle   float32
	Power   float32
	Trainer bool
	Toy     bool
	Option  int
	Team    int
	// ID is the requested object id, -1 to let the manager choose.
	ID       int
	Programs []Program
	// Run is the index into Programs started on creation, -1 for none.
	Run int
}

// ObjectManager owns the live objects.
type ObjectManager interface {
	condition.ObjectSource
	CreateObject(params CreateParams) (Object, error)
	AllObjects() []Object
	FindNearest(pos mgl32.Vec3, t data.ObjectType) Object
	DestroyTeam(team int, win bool)
	ActiveTeams() []int
}

// ProgramStore restores the programs a player saved for a level.
type ProgramStore interface {
	LoadPrograms(obj Object, levelKey string, rank int) error
}

// TerrainGeneration sizes the terrain mosaic.
type TerrainGeneration struct {
	Mosaic int
	Brick  int
	Size   float32
	Vision float32
	Depth  int
	Hard   float32
}

// Material is one terrain texture tile.
type Material struct {
	ID    int
	Image string
	U, V  float32
	Up    int
	Right int
	Down  int
	Left  int
	Hard  float32
}

// MaterialLevel drives procedural material placement.
type MaterialLevel struct {
	IDs    []int
	Min    float32
	Max    float32
	Slope  float32
	Freq   float32
	Center mgl32.Vec3
	Radius float32
}

// Terrain builds the ground of the level.
type Terrain interface {
	Generate(gen TerrainGeneration) error
	SetWind(speed mgl32.Vec3)
	LoadRelief(image string, factor float32, border bool) error
	RandomizeRelief()
	LoadResources(image string) error
	InitTextures(image string, table []int, dx, dy int) error
	InitMaterials(id int)
	AddMaterial(m Material) error
	GenerateMaterials(level MaterialLevel) error
	CreateObjects() error
	AdjustToFloor(pos mgl32.Vec3) mgl32.Vec3
	FloorLevel(pos mgl32.Vec3) float32
	FlatZoneRadius(center mgl32.Vec3, max float32) float32
	SetFlyingMaxHeight(height float32)
	AddFlyingLimit(center mgl32.Vec3, extRadius, intRadius, maxHeight float32)
}

// Planet is a sky decoration.
type Planet struct {
	Mode        data.PlanetType
	Pos         mgl32.Vec2
	Dim         float32
	Speed       float32
	Dir         float32
	Image       string
	UV1, UV2    mgl32.Vec2
	Transparent bool
}

// Water is the water plane of the level.
type Water struct {
	Air        data.WaterType
	Water      data.WaterType
	Image      string
	Diffuse    data.Color
	Ambient    data.Color
	Level      float32
	Glint      float32
	Eddy       mgl32.Vec3
	Brightness float32
}

// Cloud is the cloud layer.
type Cloud struct {
	Image   string
	Diffuse data.Color
	Ambient data.Color
	Level   float32
}

// Lightning configures the lightning storm.
type Lightning struct {
	Sleep    float32
	Delay    float32
	Magnetic float32
}

// Fog is a ground fog particle.
type Fog struct {
	Type  int
	Pos   mgl32.Vec3
	Dim   float32
	Delay float32
}

// Light is a directional light or, when Spot is set, a spot light at Pos.
type Light struct {
	Spot    bool
	Dir     mgl32.Vec3
	Pos     mgl32.Vec3
	Color   data.Color
	Highest bool
	Include data.TerrainType
	Exclude data.TerrainType
}

// GroundSpot is a colored patch painted on the ground.
type GroundSpot struct {
	Pos    mgl32.Vec3
	Radius float32
	Color  data.Color
	Smooth float32
	Min    float32
	Max    float32
}

// MapSettings configure the minimap.
type MapSettings struct {
	Floor    data.Color
	Water    data.Color
	Show     bool
	ToyIcon  bool
	Image    bool
	Filename string
	Offset   mgl32.Vec3
	Zoom     float32
	Angle    float32
	Mode     int
	Debug    bool
}

// CameraSetup places the camera at the start of the level.
type CameraSetup struct {
	Eye          mgl32.Vec3
	LookAt       mgl32.Vec3
	Delay        float32
	FadeIn       bool
	FixDirection float32
}

// Renderer receives everything visual the level configures.
type Renderer interface {
	SetBackground(bg Background)
	SetAmbientColor(c data.Color, rank int)
	SetFogColor(c data.Color, rank int)
	SetFogStart(start float32, rank int)
	SetDeepView(length float32, rank int)
	SetSecondTexture(name string)
	SetForegroundName(name string)
	SetTracePrecision(factor float32)
	SetWaterAddColor(c data.Color)
	SetLava(lava bool)
	CreatePlanet(p Planet)
	CreateWater(w Water)
	CreateCloud(c Cloud)
	CreateLightning(l Lightning)
	CreateFog(f Fog)
	CreateLight(l Light) int
	CreateGroundSpot(s GroundSpot) int
	SetMap(m MapSettings)
	ZoomMap(factor float32, enable bool)
	InitCamera(c CameraSetup)
	ChangeColors(w *World)
	ShowShortcuts(show bool)
}

// Audio plays level music.
type Audio interface {
	CacheMusic(file string)
	PlayMusic(file string, repeat bool)
}

// Profile is the player data the level unlocks read and update.
type Profile interface {
	FreeGameResearchUnlock() data.ResearchFlag
	SetFreeGameResearchUnlock(flags data.ResearchFlag)
	FreeGameBuildUnlock() data.BuildFlag
	SetFreeGameBuildUnlock(flags data.BuildFlag)
	LevelPassed(category data.LevelCategory, chapter, rank int) bool
}

// SceneReader restores the objects of a saved game and returns the object
// that was selected.
type SceneReader interface {
	ReadScene(ctx *SceneBuildContext, path string) (Object, error)
}

// Collaborators are the subsystems the builder drives. Profile, Scenes and
// Programs are optional.
type Collaborators struct {
	Terrain  Terrain
	Renderer Renderer
	Objects  ObjectManager
	Audio    Audio
	Profile  Profile
	Scenes   SceneReader
	Programs ProgramStore
}

// Validate reports the first required collaborator that is missing.
func (c Collaborators) Validate() error {
	switch {
	case c.Terrain == nil:
		return fmt.Errorf("%w: terrain", ErrMissingCollaborator)
	case c.Renderer == nil:
		return fmt.Errorf("%w: renderer", ErrMissingCollaborator)
	case c.Objects == nil:
		return fmt.Errorf("%w: object manager", ErrMissingCollaborator)
	case c.Audio == nil:
		return fmt.Errorf("%w: audio", ErrMissingCollaborator)
	}
	return nil
}
