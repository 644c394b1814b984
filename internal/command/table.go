// Package command holds the handler of every level file command.
package command

import (
	"sort"

	"github.com/samber/lo"

	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/parser"
)

func onDefault(h engine.Handler) engine.CommandSpec {
	return engine.CommandSpec{Handler: h, Modes: engine.ModeDefault}
}

func in(modes engine.LoadMode, h engine.Handler) engine.CommandSpec {
	return engine.CommandSpec{Handler: h, Modes: modes}
}

// terrain tags a terrain pipeline step, which must come before the objects.
func terrain(h engine.Handler) engine.CommandSpec {
	return onDefault(func(ctx *engine.SceneBuildContext, line *parser.Line) error {
		if ctx.ObjectsPlaced {
			return &engine.OrderingViolationError{Command: line.Command(), Before: "BeginObject"}
		}
		return h(ctx, line)
	})
}

// Table returns a fresh command table. Commands not tagged otherwise run on
// a fresh start and on a save restore, but not on a reset.
func Table() map[string]engine.CommandSpec {
	return map[string]engine.CommandSpec{
		// Level description
		"Title":        onDefault(title),
		"Resume":       onDefault(resume),
		"ScriptName":   onDefault(scriptName),
		"ScriptFile":   onDefault(scriptFile),
		"Instructions": onDefault(instructions),
		"Satellite":    onDefault(satellite),
		"Loading":      onDefault(loading),
		"HelpFile":     onDefault(helpFile),
		"SoluceFile":   onDefault(soluceFile),
		"EndingFile":   onDefault(endingFile),
		"MessageDelay": onDefault(messageDelay),
		"MissionTimer": in(engine.ModeAll, missionTimer),
		"TeamName":     in(engine.ModeAll, teamName),
		"Level":        onDefault(level),

		// Audio
		"CacheAudio":  onDefault(cacheAudio),
		"AudioChange": onDefault(audioChange),
		"Audio":       onDefault(audio),

		// Appearance
		"AmbientColor":   onDefault(ambientColor),
		"FogColor":       onDefault(fogColor),
		"VehicleColor":   onDefault(vehicleColor),
		"InsectColor":    onDefault(insectColor),
		"GreeneryColor":  onDefault(greeneryColor),
		"DeepView":       onDefault(deepView),
		"FogStart":       onDefault(fogStart),
		"SecondTexture":  onDefault(secondTexture),
		"Background":     onDefault(background),
		"Planet":         onDefault(planet),
		"ForegroundName": onDefault(foregroundName),

		// Terrain
		"TerrainGenerate":     terrain(terrainGenerate),
		"TerrainWind":         terrain(terrainWind),
		"TerrainRelief":       terrain(terrainRelief),
		"TerrainRandomRelief": terrain(terrainRandomRelief),
		"TerrainResource":     terrain(terrainResource),
		"TerrainWater":        terrain(terrainWater),
		"TerrainLava":         terrain(terrainLava),
		"TerrainCloud":        terrain(terrainCloud),
		"TerrainBlitz":        terrain(terrainBlitz),
		"TerrainInitTextures": terrain(terrainInitTextures),
		"TerrainInit":         terrain(terrainInit),
		"TerrainMaterial":     terrain(terrainMaterial),
		"TerrainLevel":        terrain(terrainLevel),
		"TerrainCreate":       terrain(terrainCreate),

		// Objects
		"BeginObject":     in(engine.ModeAll, beginObject),
		"LevelController": in(engine.ModeNormal|engine.ModeReset, levelController),
		"CreateObject":    in(engine.ModeNormal|engine.ModeReset, createObject),

		// Scene decoration
		"CreateFog":       onDefault(createFog),
		"CreateLight":     onDefault(createLight),
		"CreateSpot":      onDefault(createSpot),
		"GroundSpot":      onDefault(groundSpot),
		"WaterColor":      onDefault(waterColor),
		"MapColor":        onDefault(mapColor),
		"MapZoom":         onDefault(mapZoom),
		"MaxFlyingHeight": onDefault(maxFlyingHeight),
		"AddFlyingHeight": onDefault(addFlyingHeight),

		// Camera
		"Camera": in(engine.ModeAll, camera),
		"View":   onDefault(view),

		// End of mission
		"EndMissionTake":        onDefault(endMissionTake),
		"EndMissionTeams":       onDefault(endMissionTeams),
		"EndMissionDelay":       onDefault(endMissionDelay),
		"EndMissionResearch":    onDefault(endMissionResearch),
		"EndMissionTimeout":     onDefault(endMissionTimeout),
		"Scoreboard":            onDefault(enableScoreboard),
		"ScoreboardKillRule":    onDefault(scoreboardKillRule),
		"ScoreboardObjectRule":  onDefault(scoreboardObjectRule),
		"ScoreboardEndTakeRule": onDefault(scoreboardEndTakeRule),

		// Technology
		"ObligatoryToken": onDefault(obligatoryToken),
		"ProhibitedToken": onDefault(prohibitedToken),
		"EnableBuild":     onDefault(enableBuild),
		"EnableResearch":  onDefault(enableResearch),
		"DoneResearch":    in(engine.ModeNormal, doneResearch),
		"NewScript":       onDefault(newScript),
	}
}

// Names returns the sorted command names of the table.
func Names() []string {
	names := lo.Keys(Table())
	sort.Strings(names)
	return names
}

func overflow(table string, capacity, size int) error {
	return &engine.ResourceOverflowError{Table: table, Capacity: capacity, Size: size}
}
