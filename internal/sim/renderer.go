package sim

import (
	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/engine"
)

// Renderer records every visual setting of the scene.
type Renderer struct {
	Background     engine.Background
	Ambient        [2]data.Color
	FogColor       [2]data.Color
	FogStart       [2]float32
	DeepView       [2]float32
	SecondTexture  string
	Foreground     string
	TracePrecision float32
	WaterAddColor  data.Color
	Lava           bool
	Planets        []engine.Planet
	Water          *engine.Water
	Cloud          *engine.Cloud
	Lightning      *engine.Lightning
	Fogs           []engine.Fog
	Lights         []engine.Light
	GroundSpots    []engine.GroundSpot
	Map            engine.MapSettings
	MapZoom        float32
	MapZoomEnabled bool
	Camera         engine.CameraSetup
	ColorChanges   int
	VehicleColors  map[int]data.Color
	Shortcuts      bool
}

func NewRenderer() *Renderer {
	return &Renderer{TracePrecision: 1, MapZoom: 1, VehicleColors: make(map[int]data.Color)}
}

func (r *Renderer) SetBackground(bg engine.Background) { r.Background = bg }
func (r *Renderer) SetAmbientColor(c data.Color, rank int) { r.Ambient[rank] = c }
func (r *Renderer) SetFogColor(c data.Color, rank int) { r.FogColor[rank] = c }
func (r *Renderer) SetFogStart(start float32, rank int) { r.FogStart[rank] = start }
func (r *Renderer) SetDeepView(length float32, rank int) { r.DeepView[rank] = length }
func (r *Renderer) SetSecondTexture(name string) { r.SecondTexture = name }
func (r *Renderer) SetForegroundName(name string) { r.Foreground = name }
func (r *Renderer) SetTracePrecision(factor float32) { r.TracePrecision = factor }
func (r *Renderer) SetWaterAddColor(c data.Color) { r.WaterAddColor = c }
func (r *Renderer) SetLava(lava bool) { r.Lava = lava }
func (r *Renderer) CreatePlanet(p engine.Planet) { r.Planets = append(r.Planets, p) }
func (r *Renderer) CreateWater(w engine.Water) { r.Water = &w }
func (r *Renderer) CreateCloud(c engine.Cloud) { r.Cloud = &c }
func (r *Renderer) CreateLightning(l engine.Lightning) { r.Lightning = &l }
func (r *Renderer) CreateFog(f engine.Fog) { r.Fogs = append(r.Fogs, f) }
func (r *Renderer) SetMap(m engine.MapSettings) { r.Map = m }
func (r *Renderer) InitCamera(c engine.CameraSetup) { r.Camera = c }
func (r *Renderer) ShowShortcuts(show bool) { r.Shortcuts = show }

func (r *Renderer) CreateLight(l engine.Light) int {
	r.Lights = append(r.Lights, l)
	return len(r.Lights) - 1
}

func (r *Renderer) CreateGroundSpot(s engine.GroundSpot) int {
	r.GroundSpots = append(r.GroundSpots, s)
	return len(r.GroundSpots) - 1
}

func (r *Renderer) ZoomMap(factor float32, enable bool) {
	r.MapZoom = factor
	r.MapZoomEnabled = enable
}

// ChangeColors takes the team colors of w for recoloring textures.
func (r *Renderer) ChangeColors(w *engine.World) {
	r.ColorChanges++
	for team, c := range w.VehicleColor {
		r.VehicleColors[team] = c
	}
}
