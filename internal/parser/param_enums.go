package parser

import (
	"strconv"
	"strings"

	"github.com/colobot/colobot-sub009/internal/data"
)

// lookupEnum resolves a symbolic name through byName and falls back to the
// raw value read as a plain integer, so legacy numeric level files still load.
func lookupEnum[T ~int](p *Param, expected string, byName func(string) (T, bool)) (T, error) {
	if p.empty {
		return 0, p.missing(expected)
	}
	v := strings.TrimSpace(p.value)
	if t, ok := byName(v); ok {
		return t, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, p.bad(expected)
	}
	return T(n), nil
}

func (p *Param) AsObjectType() (data.ObjectType, error) {
	return lookupEnum(p, "object type", data.ObjectTypeByName)
}

func (p *Param) AsObjectTypeOr(def data.ObjectType) (data.ObjectType, error) {
	return orDefault(p, def, p.AsObjectType)
}

func (p *Param) AsDriveType() (data.DriveType, error) {
	return lookupEnum(p, "drive type", data.DriveTypeByName)
}

func (p *Param) AsDriveTypeOr(def data.DriveType) (data.DriveType, error) {
	return orDefault(p, def, p.AsDriveType)
}

func (p *Param) AsToolType() (data.ToolType, error) {
	return lookupEnum(p, "tool type", data.ToolTypeByName)
}

func (p *Param) AsToolTypeOr(def data.ToolType) (data.ToolType, error) {
	return orDefault(p, def, p.AsToolType)
}

func (p *Param) AsWaterType() (data.WaterType, error) {
	return lookupEnum(p, "water type", data.WaterTypeByName)
}

func (p *Param) AsWaterTypeOr(def data.WaterType) (data.WaterType, error) {
	return orDefault(p, def, p.AsWaterType)
}

func (p *Param) AsTerrainType() (data.TerrainType, error) {
	return lookupEnum(p, "terrain type", data.TerrainTypeByName)
}

func (p *Param) AsTerrainTypeOr(def data.TerrainType) (data.TerrainType, error) {
	return orDefault(p, def, p.AsTerrainType)
}

// AsBuildFlag returns a single bit meant to be OR-ed into a build mask.
func (p *Param) AsBuildFlag() (data.BuildFlag, error) {
	return lookupEnum(p, "build flag", data.BuildFlagByName)
}

// AsResearchFlag returns a single bit meant to be OR-ed into a research mask.
func (p *Param) AsResearchFlag() (data.ResearchFlag, error) {
	return lookupEnum(p, "research flag", data.ResearchFlagByName)
}

// AsSortTypeOr never fails on a present value; unknown names sort by id.
func (p *Param) AsSortTypeOr(def data.SortType) (data.SortType, error) {
	if p.empty {
		return def, nil
	}
	v := strings.TrimSpace(p.value)
	if n, err := strconv.Atoi(v); err == nil {
		return data.SortType(n), nil
	}
	return data.SortTypeByName(v), nil
}

func (p *Param) AsPyroType() (data.PyroType, error) {
	return lookupEnum(p, "pyro type", data.PyroTypeByName)
}

func (p *Param) AsPyroTypeOr(def data.PyroType) (data.PyroType, error) {
	return orDefault(p, def, p.AsPyroType)
}

func (p *Param) AsCameraType() (data.CameraType, error) {
	return lookupEnum(p, "camera type", data.CameraTypeByName)
}

func (p *Param) AsCameraTypeOr(def data.CameraType) (data.CameraType, error) {
	return orDefault(p, def, p.AsCameraType)
}

func (p *Param) AsMissionType() (data.MissionType, error) {
	return lookupEnum(p, "mission type", data.MissionTypeByName)
}

func (p *Param) AsMissionTypeOr(def data.MissionType) (data.MissionType, error) {
	return orDefault(p, def, p.AsMissionType)
}

func (p *Param) AsPlanetType() (data.PlanetType, error) {
	return lookupEnum(p, "planet type", data.PlanetTypeByName)
}

func (p *Param) AsPlanetTypeOr(def data.PlanetType) (data.PlanetType, error) {
	return orDefault(p, def, p.AsPlanetType)
}
