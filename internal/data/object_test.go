package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// aliases collapse onto the canonical name on the way back.
var objectAliases = map[string]string{
	"PracticeBot":   "WheeledTrainer",
	"FuelCell":      "NuclearCell",
	"PlatinumSpot":  "UraniumSpot",
	"PlatinumOre":   "UraniumOre",
	"FuelCellPlant": "NuclearPlant",
}

func TestObjectTypeRoundTrip(t *testing.T) {
	for _, name := range ObjectTypeNames() {
		if name == "All" || name == "Any" {
			continue
		}
		typ, ok := ObjectTypeByName(name)
		require.True(t, ok, name)

		want := name
		if canonical, isAlias := objectAliases[name]; isAlias {
			want = canonical
		}
		assert.Equal(t, want, FromObjectType(typ), "round trip of %s", name)
	}
}

func TestObjectTypeAliasesCollapse(t *testing.T) {
	uranium, ok := ObjectTypeByName("UraniumOre")
	require.True(t, ok)
	platinum, ok := ObjectTypeByName("PlatinumOre")
	require.True(t, ok)

	assert.Equal(t, uranium, platinum)
	assert.Equal(t, "UraniumOre", FromObjectType(platinum))
}

func TestObjectTypeFallbacks(t *testing.T) {
	t.Run("wildcards", func(t *testing.T) {
		all, _ := ObjectTypeByName("All")
		anyType, _ := ObjectTypeByName("Any")
		assert.Equal(t, ObjectNull, all)
		assert.Equal(t, ObjectNull, anyType)
		assert.Equal(t, "0", FromObjectType(ObjectNull))
	})

	t.Run("case sensitive", func(t *testing.T) {
		_, ok := ObjectTypeByName("powercell")
		assert.False(t, ok)
	})

	t.Run("unnamed renders numerically", func(t *testing.T) {
		assert.Equal(t, "62", FromObjectType(ObjectShow))
	})

	t.Run("families", func(t *testing.T) {
		stone, _ := ObjectTypeByName("Stone")
		assert.Equal(t, ObjectTeen0+34, stone)
		g7, _ := ObjectTypeByName("Greenery7")
		assert.Equal(t, ObjectType(77), g7)
		assert.Equal(t, "MegaStalk3", FromObjectType(ObjectRoot0+3))
	})
}

func TestVehicleHelpers(t *testing.T) {
	assert.Equal(t, DriveTracked, DriveFromObject(ObjectMobileTC))
	assert.Equal(t, DriveHeavy, DriveFromObject(ObjectMobileRR))
	assert.Equal(t, DriveOther, DriveFromObject(ObjectPower))
	assert.Equal(t, ToolSniffer, ToolFromObject(ObjectMobileFS))
	assert.Equal(t, ToolOther, ToolFromObject(ObjectMobileWT))

	assert.Equal(t, ResearchFly, ResearchFor(ObjectMobileFC))
	assert.Equal(t, ResearchCanon, ResearchForTool(ObjectMobileFC))
	assert.True(t, ObjectMobileDR.IsVehicle())
	assert.False(t, ObjectController.IsVehicle())
	assert.True(t, ObjectAnt.IsAlien())
}

func TestCameraRoundTrip(t *testing.T) {
	for _, name := range CameraTypeNames() {
		c, ok := CameraTypeByName(name)
		require.True(t, ok)
		assert.Equal(t, name, FromCameraType(c))
	}
	assert.Equal(t, "5", FromCameraType(CameraScript))
}

func TestSortTypeNeverFails(t *testing.T) {
	assert.Equal(t, SortPoints, SortTypeByName("Points"))
	assert.Equal(t, SortID, SortTypeByName("Name"))
	assert.Equal(t, SortID, SortTypeByName("whatever"))
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("FreeMissions")
	require.NoError(t, err)
	assert.Equal(t, CategoryFreeGame, c)

	_, err = ParseCategory("nope")
	assert.Error(t, err)
}

func TestFlagNames(t *testing.T) {
	assert.Equal(t, []string{"TRACKER", "WINGER"}, (ResearchTank | ResearchFly).Names())
	assert.Equal(t, []string{"iPAW"}, ResearchIPaw.Names())
	assert.Equal(t, []string{"BotFactory", "FuelCellPlant"}, (BuildFactory | BuildNuclear).Names())
	assert.Empty(t, BuildFlag(0).Names())
}
