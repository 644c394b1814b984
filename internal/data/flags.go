package data

import (
	"sort"
	"strconv"
)

// BuildFlag is a bit in the set of buildings a level allows.
type BuildFlag int

const (
	BuildFactory   BuildFlag = 1 << 0
	BuildDerrick   BuildFlag = 1 << 1
	BuildConvert   BuildFlag = 1 << 2
	BuildRadar     BuildFlag = 1 << 3
	BuildEnergy    BuildFlag = 1 << 4
	BuildNuclear   BuildFlag = 1 << 5
	BuildStation   BuildFlag = 1 << 6
	BuildRepair    BuildFlag = 1 << 7
	BuildTower     BuildFlag = 1 << 8
	BuildResearch  BuildFlag = 1 << 9
	BuildLabo      BuildFlag = 1 << 10
	BuildPara      BuildFlag = 1 << 11
	BuildInfo      BuildFlag = 1 << 12
	BuildDestroyer BuildFlag = 1 << 13
	BuildSafe      BuildFlag = 1 << 14
	BuildGFlat     BuildFlag = 1 << 16
	BuildFlagPole  BuildFlag = 1 << 17
)

var buildMap = map[string]BuildFlag{
	"BotFactory":     BuildFactory,
	"Derrick":        BuildDerrick,
	"Converter":      BuildConvert,
	"RadarStation":   BuildRadar,
	"PowerPlant":     BuildEnergy,
	"NuclearPlant":   BuildNuclear,
	"FuelCellPlant":  BuildNuclear,
	"PowerStation":   BuildStation,
	"RepairCenter":   BuildRepair,
	"DefenseTower":   BuildTower,
	"ResearchCenter": BuildResearch,
	"AutoLab":        BuildLabo,
	"PowerCaptor":    BuildPara,
	"ExchangePost":   BuildInfo,
	"Destroyer":      BuildDestroyer,
	"Vault":          BuildSafe,
	"FlatGround":     BuildGFlat,
	"Flag":           BuildFlagPole,
}

// BuildFlagByName looks up a building flag name.
func BuildFlagByName(s string) (BuildFlag, bool) {
	v, ok := buildMap[s]
	return v, ok
}

// BuildFlagFor returns the flag a building type needs, and false for types
// that are not buildable.
func BuildFlagFor(t ObjectType) (BuildFlag, bool) {
	switch t {
	case ObjectFactory:
		return BuildFactory, true
	case ObjectDerrick:
		return BuildDerrick, true
	case ObjectConvert:
		return BuildConvert, true
	case ObjectRadar:
		return BuildRadar, true
	case ObjectEnergy:
		return BuildEnergy, true
	case ObjectNuclear:
		return BuildNuclear, true
	case ObjectStation:
		return BuildStation, true
	case ObjectRepair:
		return BuildRepair, true
	case ObjectTower:
		return BuildTower, true
	case ObjectResearch:
		return BuildResearch, true
	case ObjectLabo:
		return BuildLabo, true
	case ObjectPara:
		return BuildPara, true
	case ObjectInfo:
		return BuildInfo, true
	case ObjectDestroyer:
		return BuildDestroyer, true
	case ObjectSafe:
		return BuildSafe, true
	}
	return 0, false
}

// ResearchFlag is a bit in the set of researched technologies.
type ResearchFlag int

const (
	ResearchTank     ResearchFlag = 1 << 0
	ResearchFly      ResearchFlag = 1 << 1
	ResearchCanon    ResearchFlag = 1 << 2
	ResearchTower    ResearchFlag = 1 << 3
	ResearchAtomic   ResearchFlag = 1 << 4
	ResearchThump    ResearchFlag = 1 << 5
	ResearchShield   ResearchFlag = 1 << 6
	ResearchPhazer   ResearchFlag = 1 << 7
	ResearchIPaw     ResearchFlag = 1 << 8
	ResearchIGun     ResearchFlag = 1 << 9
	ResearchRecycler ResearchFlag = 1 << 10
	ResearchSubm     ResearchFlag = 1 << 11
	ResearchSniffer  ResearchFlag = 1 << 12
	ResearchBuilder  ResearchFlag = 1 << 13
	ResearchTarget   ResearchFlag = 1 << 14
)

var researchMap = map[string]ResearchFlag{
	"TRACKER":          ResearchTank,
	"WINGER":           ResearchFly,
	"THUMPER":          ResearchThump,
	"SHOOTER":          ResearchCanon,
	"TOWER":            ResearchTower,
	"PHAZER":           ResearchPhazer,
	"SHIELD":           ResearchShield,
	"ATOMIC":           ResearchAtomic,
	"iPAW":             ResearchIPaw,
	"iGUN":             ResearchIGun,
	"RECYCLER":         ResearchRecycler,
	"SUBBER":           ResearchSubm,
	"SNIFFER":          ResearchSniffer,
	"BUILDER":          ResearchBuilder,
	"TARGET":           ResearchTarget,
	"jestemPAWIEM":     ResearchIPaw,
	"jestemPISTOLETEM": ResearchIGun,
}

// ResearchFlagByName looks up a research name.
func ResearchFlagByName(s string) (ResearchFlag, bool) {
	v, ok := researchMap[s]
	return v, ok
}

// ResearchFor returns the research a vehicle's chassis needs before a factory
// can build it. Types with no requirement return 0.
func ResearchFor(t ObjectType) ResearchFlag {
	switch t {
	case ObjectMobileTT, ObjectMobileTA, ObjectMobileTC, ObjectMobileTI, ObjectMobileTS, ObjectMobileTB:
		return ResearchTank
	case ObjectMobileFT, ObjectMobileFA, ObjectMobileFC, ObjectMobileFI, ObjectMobileFS, ObjectMobileFB:
		return ResearchFly
	case ObjectMobileRT:
		return ResearchThump
	case ObjectMobileRC:
		return ResearchPhazer
	case ObjectMobileRR:
		return ResearchRecycler
	case ObjectMobileRS:
		return ResearchShield
	case ObjectMobileSA:
		return ResearchSubm
	case ObjectMobileIT, ObjectMobileIA, ObjectMobileIC, ObjectMobileII, ObjectMobileIS, ObjectMobileIB:
		return ResearchIPaw
	case ObjectMobileTG:
		return ResearchTarget
	}
	return 0
}

// ResearchForTool returns the extra research a tool needs on top of the drive.
func ResearchForTool(t ObjectType) ResearchFlag {
	switch ToolFromObject(t) {
	case ToolShooter:
		return ResearchCanon
	case ToolOrganicShooter:
		return ResearchIGun
	case ToolSniffer:
		return ResearchSniffer
	case ToolBuilder:
		return ResearchBuilder
	}
	return 0
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

// Names lists the building names set in f, one per bit.
func (f BuildFlag) Names() []string { return flagNames(buildMap, f) }

// Names lists the research names set in f, one per bit.
func (f ResearchFlag) Names() []string { return flagNames(researchMap, f) }

// flagNames picks the alphabetically first name of every bit set.
func flagNames[T ~int](names map[string]T, set T) []string {
	keys := make([]string, 0, len(names))
	for name := range names {
		keys = append(keys, name)
	}
	sort.Strings(keys)

	seen := make(map[T]bool)
	var out []string
	for _, name := range keys {
		flag := names[name]
		if set&flag == 0 || seen[flag] {
			continue
		}
		seen[flag] = true
		out = append(out, name)
	}
	return out
}
