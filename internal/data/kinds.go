package data

// DriveType is the locomotion family of a vehicle.
type DriveType int

const (
	DriveOther DriveType = iota
	DriveWheeled
	DriveTracked
	DriveWinged
	DriveLegged
	DriveHeavy
	DriveAmphibious
)

var driveMap = map[string]DriveType{
	"Wheeled":    DriveWheeled,
	"Tracked":    DriveTracked,
	"Winged":     DriveWinged,
	"Legged":     DriveLegged,
	"Heavy":      DriveHeavy,
	"Amphibious": DriveAmphibious,
	"Other":      DriveOther,
}

// DriveTypeByName looks up a drive name.
func DriveTypeByName(s string) (DriveType, bool) {
	v, ok := driveMap[s]
	return v, ok
}

// ToolType is the tool mounted on a vehicle.
type ToolType int

const (
	ToolOther ToolType = iota
	ToolGrabber
	ToolSniffer
	ToolShooter
	ToolOrganicShooter
	ToolBuilder
)

var toolMap = map[string]ToolType{
	"Grabber":     ToolGrabber,
	"Sniffer":     ToolSniffer,
	"Shooter":     ToolShooter,
	"OrgaShooter": ToolOrganicShooter,
	"Builder":     ToolBuilder,
	"Other":       ToolOther,
}

// ToolTypeByName looks up a tool name.
func ToolTypeByName(s string) (ToolType, bool) {
	v, ok := toolMap[s]
	return v, ok
}

// DriveFromObject returns the drive family of a vehicle type, DriveOther for
// anything else.
func DriveFromObject(t ObjectType) DriveType {
	switch t {
	case ObjectMobileWT, ObjectMobileWA, ObjectMobileWC, ObjectMobileWI, ObjectMobileWS, ObjectMobileWB:
		return DriveWheeled
	case ObjectMobileTT, ObjectMobileTA, ObjectMobileTC, ObjectMobileTI, ObjectMobileTS, ObjectMobileTB:
		return DriveTracked
	case ObjectMobileFT, ObjectMobileFA, ObjectMobileFC, ObjectMobileFI, ObjectMobileFS, ObjectMobileFB:
		return DriveWinged
	case ObjectMobileIT, ObjectMobileIA, ObjectMobileIC, ObjectMobileII, ObjectMobileIS, ObjectMobileIB:
		return DriveLegged
	case ObjectMobileRP, ObjectMobileRT, ObjectMobileRC, ObjectMobileRR, ObjectMobileRS:
		return DriveHeavy
	case ObjectMobileSA, ObjectMobileST:
		return DriveAmphibious
	}
	return DriveOther
}

// ToolFromObject returns the tool mounted on a vehicle type, ToolOther for
// anything else.
func ToolFromObject(t ObjectType) ToolType {
	switch t {
	case ObjectMobileWA, ObjectMobileTA, ObjectMobileFA, ObjectMobileIA:
		return ToolGrabber
	case ObjectMobileWS, ObjectMobileTS, ObjectMobileFS, ObjectMobileIS:
		return ToolSniffer
	case ObjectMobileWC, ObjectMobileTC, ObjectMobileFC, ObjectMobileIC:
		return ToolShooter
	case ObjectMobileWI, ObjectMobileTI, ObjectMobileFI, ObjectMobileII:
		return ToolOrganicShooter
	case ObjectMobileWB, ObjectMobileTB, ObjectMobileFB, ObjectMobileIB:
		return ToolBuilder
	}
	return ToolOther
}

// WaterType selects the water surface shader.
type WaterType int

const (
	WaterNull WaterType = iota
	WaterTT
	WaterTO
	WaterCT
	WaterCO
)

var waterMap = map[string]WaterType{
	"nullptr": WaterNull,
	"TT":      WaterTT,
	"TO":      WaterTO,
	"CT":      WaterCT,
	"CO":      WaterCO,
}

// WaterTypeByName looks up a water shader name.
func WaterTypeByName(s string) (WaterType, bool) {
	v, ok := waterMap[s]
	return v, ok
}

// TerrainType is the engine object class a light is included in or excluded from.
type TerrainType int

const (
	TerrainNull TerrainType = iota
	TerrainTerrain
	TerrainFix
	TerrainQuartz
	TerrainMetal
)

var terrainMap = map[string]TerrainType{
	"Terrain": TerrainTerrain,
	"Object":  TerrainFix,
	"Quartz":  TerrainQuartz,
	"Metal":   TerrainMetal,
}

// TerrainTypeByName looks up an engine object class name.
func TerrainTypeByName(s string) (TerrainType, bool) {
	v, ok := terrainMap[s]
	return v, ok
}

// SortType orders scoreboard results.
type SortType int

const (
	SortID SortType = iota
	SortPoints
)

// SortTypeByName never fails: anything but "Points" sorts by team id.
func SortTypeByName(s string) SortType {
	if s == "Points" {
		return SortPoints
	}
	return SortID
}

// PyroType is a scripted effect kind.
type PyroType int

const (
	PyroNull PyroType = iota
	PyroFragT
	PyroFragO
	PyroFragW
	PyroExploT
	PyroExploO
	PyroExploW
	PyroShotT
	PyroShotH
	PyroShotM
	PyroShotW
	PyroEgg
	PyroBurnT
	PyroBurnO
	PyroSpider
	PyroFall
	PyroReset
	PyroWin
	PyroLost
)

var pyroMap = map[string]PyroType{
	"FRAGt":  PyroFragT,
	"FRAGo":  PyroFragO,
	"FRAGw":  PyroFragW,
	"EXPLOt": PyroExploT,
	"EXPLOo": PyroExploO,
	"EXPLOw": PyroExploW,
	"SHOTt":  PyroShotT,
	"SHOTh":  PyroShotH,
	"SHOTm":  PyroShotM,
	"SHOTw":  PyroShotW,
	"EGG":    PyroEgg,
	"BURNt":  PyroBurnT,
	"BURNo":  PyroBurnO,
	"SPIDER": PyroSpider,
	"FALL":   PyroFall,
	"RESET":  PyroReset,
	"WIN":    PyroWin,
	"LOST":   PyroLost,
}

// PyroTypeByName looks up an effect name.
func PyroTypeByName(s string) (PyroType, bool) {
	v, ok := pyroMap[s]
	return v, ok
}

// CameraType is the camera behaviour attached to an object.
type CameraType int

const (
	CameraNull CameraType = iota
	CameraBack
	CameraPlane
	CameraOnboard
	CameraFix
	CameraScript
)

var cameraMap = map[string]CameraType{
	"BACK":    CameraBack,
	"PLANE":   CameraPlane,
	"ONBOARD": CameraOnboard,
	"FIX":     CameraFix,
}

var cameraNames = map[CameraType]string{
	CameraBack:    "BACK",
	CameraPlane:   "PLANE",
	CameraOnboard: "ONBOARD",
	CameraFix:     "FIX",
}

// CameraTypeByName looks up a camera name.
func CameraTypeByName(s string) (CameraType, bool) {
	v, ok := cameraMap[s]
	return v, ok
}

// FromCameraType renders c with its symbolic name, or as a decimal integer.
func FromCameraType(c CameraType) string {
	if name, ok := cameraNames[c]; ok {
		return name
	}
	return itoa(int(c))
}

// CameraTypeNames returns every symbolic camera name.
func CameraTypeNames() []string {
	return []string{"BACK", "PLANE", "ONBOARD", "FIX"}
}

// MissionType changes how a level is played.
type MissionType int

const (
	MissionNormal MissionType = iota
	MissionRetro
	MissionCodeBattle
)

var missionMap = map[string]MissionType{
	"NORMAL":      MissionNormal,
	"RETRO":       MissionRetro,
	"CODE_BATTLE": MissionCodeBattle,
}

// MissionTypeByName looks up a mission type name.
func MissionTypeByName(s string) (MissionType, bool) {
	v, ok := missionMap[s]
	return v, ok
}

func (m MissionType) String() string {
	for name, v := range missionMap {
		if v == m {
			return name
		}
	}
	return itoa(int(m))
}

// PlanetType selects which sky layer a planet is drawn in.
type PlanetType int

const (
	PlanetSky PlanetType = iota
	PlanetOuterSpace
)

var planetMap = map[string]PlanetType{
	"0": PlanetSky,
	"1": PlanetOuterSpace,
}

// PlanetTypeByName looks up a planet layer.
func PlanetTypeByName(s string) (PlanetType, bool) {
	v, ok := planetMap[s]
	return v, ok
}
