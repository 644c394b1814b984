package data

import (
	"fmt"
	"strconv"
)

// ObjectType identifies every kind of object a level can place. The numeric
// values are the ones older level files and save games store, so they must
// not be renumbered.
type ObjectType int

const (
	ObjectNull      ObjectType = 0
	ObjectFix       ObjectType = 1
	ObjectPortico   ObjectType = 2
	ObjectBase      ObjectType = 3
	ObjectDerrick   ObjectType = 4
	ObjectFactory   ObjectType = 5
	ObjectStation   ObjectType = 6
	ObjectConvert   ObjectType = 7
	ObjectRepair    ObjectType = 8
	ObjectTower     ObjectType = 9
	ObjectNest      ObjectType = 10
	ObjectResearch  ObjectType = 11
	ObjectRadar     ObjectType = 12
	ObjectEnergy    ObjectType = 13
	ObjectLabo      ObjectType = 14
	ObjectNuclear   ObjectType = 15
	ObjectStart     ObjectType = 16
	ObjectEnd       ObjectType = 17
	ObjectInfo      ObjectType = 18
	ObjectPara      ObjectType = 19
	ObjectTarget1   ObjectType = 20
	ObjectTarget2   ObjectType = 21
	ObjectSafe      ObjectType = 22
	ObjectHuston    ObjectType = 23
	ObjectDestroyer ObjectType = 24

	ObjectFret    ObjectType = 30
	ObjectStone   ObjectType = 31
	ObjectUranium ObjectType = 32
	ObjectMetal   ObjectType = 33
	ObjectPower   ObjectType = 34
	ObjectAtomic  ObjectType = 35
	ObjectBullet  ObjectType = 36
	ObjectBBox    ObjectType = 37
	ObjectTNT     ObjectType = 38
	ObjectScrap1  ObjectType = 40

	ObjectMarkPower   ObjectType = 50
	ObjectMarkStone   ObjectType = 51
	ObjectMarkUranium ObjectType = 52
	ObjectMarkKeyA    ObjectType = 53

	ObjectBomb    ObjectType = 60
	ObjectWinFire ObjectType = 61
	ObjectShow    ObjectType = 62
	ObjectBag     ObjectType = 63

	ObjectPlant0 ObjectType = 70
	ObjectTree0  ObjectType = 90

	// Vehicles: trainers, grabbers, shooters, orga shooters, sniffers, builders.
	ObjectMobileWT ObjectType = 100
	ObjectMobileTT ObjectType = 101
	ObjectMobileFT ObjectType = 102
	ObjectMobileIT ObjectType = 103
	ObjectMobileRP ObjectType = 104
	ObjectMobileST ObjectType = 105
	ObjectMobileWA ObjectType = 110
	ObjectMobileTA ObjectType = 111
	ObjectMobileFA ObjectType = 112
	ObjectMobileIA ObjectType = 113
	ObjectMobileWC ObjectType = 120
	ObjectMobileTC ObjectType = 121
	ObjectMobileFC ObjectType = 122
	ObjectMobileIC ObjectType = 123
	ObjectMobileWI ObjectType = 130
	ObjectMobileTI ObjectType = 131
	ObjectMobileFI ObjectType = 132
	ObjectMobileII ObjectType = 133
	ObjectMobileWS ObjectType = 140
	ObjectMobileTS ObjectType = 141
	ObjectMobileFS ObjectType = 142
	ObjectMobileIS ObjectType = 143
	ObjectMobileWB ObjectType = 150
	ObjectMobileTB ObjectType = 151
	ObjectMobileFB ObjectType = 152
	ObjectMobileIB ObjectType = 153

	ObjectMobileRT   ObjectType = 200
	ObjectMobileRC   ObjectType = 201
	ObjectMobileRR   ObjectType = 202
	ObjectMobileRS   ObjectType = 203
	ObjectMobileSA   ObjectType = 210
	ObjectMobileTG   ObjectType = 211
	ObjectMobileDR   ObjectType = 212
	ObjectController ObjectType = 213

	ObjectWayPoint ObjectType = 250
	ObjectFlagB    ObjectType = 260
	ObjectFlagR    ObjectType = 261
	ObjectFlagG    ObjectType = 262
	ObjectFlagY    ObjectType = 263
	ObjectFlagV    ObjectType = 264
	ObjectKeyA     ObjectType = 270
	ObjectKeyB     ObjectType = 271
	ObjectKeyC     ObjectType = 272
	ObjectKeyD     ObjectType = 273

	ObjectHuman ObjectType = 300
	ObjectToto  ObjectType = 301
	ObjectTech  ObjectType = 302

	ObjectBarrier0   ObjectType = 400
	ObjectBarricade0 ObjectType = 410

	ObjectMother ObjectType = 500
	ObjectEgg    ObjectType = 501
	ObjectAnt    ObjectType = 502
	ObjectSpider ObjectType = 503
	ObjectBee    ObjectType = 504
	ObjectWorm   ObjectType = 505

	ObjectRuinMobileW1 ObjectType = 600
	ObjectRuinMobileW2 ObjectType = 601
	ObjectRuinMobileT1 ObjectType = 602
	ObjectRuinMobileT2 ObjectType = 603
	ObjectRuinMobileR1 ObjectType = 604
	ObjectRuinMobileR2 ObjectType = 605
	ObjectRuinFactory  ObjectType = 606
	ObjectRuinDoor     ObjectType = 607
	ObjectRuinSupport  ObjectType = 608
	ObjectRuinRadar    ObjectType = 609
	ObjectRuinConvert  ObjectType = 610
	ObjectRuinBase     ObjectType = 611
	ObjectRuinHead     ObjectType = 612

	ObjectQuartz0   ObjectType = 700
	ObjectRoot0     ObjectType = 710
	ObjectMushroom1 ObjectType = 731
	ObjectMushroom2 ObjectType = 732
	ObjectTeen0     ObjectType = 800
	ObjectApollo1   ObjectType = 900
	ObjectHome1     ObjectType = 910
)

// Sized families. Members are Base+i.
const (
	PlantCount     = 20
	TreeCount      = 6
	TeenCount      = 45
	QuartzCount    = 4
	RootCount      = 6
	BarrierCount   = 4
	BarricadeCount = 2
	ApolloCount    = 5
	ScrapCount     = 5
	MarkKeyCount   = 4
)

type objectName struct {
	name string
	typ  ObjectType
}

// objectNames lists the symbolic names in canonical-first order: when two
// names share a type, the first one is what FromObjectType renders.
var objectNames = buildObjectNames()

func buildObjectNames() []objectName {
	names := []objectName{
		{"All", ObjectNull},
		{"Any", ObjectNull},
		{"Portico", ObjectPortico},
		{"SpaceShip", ObjectBase},
		{"WheeledTrainer", ObjectMobileWT},
		{"PracticeBot", ObjectMobileWT},
		{"WingedTrainer", ObjectMobileFT},
		{"TrackedTrainer", ObjectMobileTT},
		{"LeggedTrainer", ObjectMobileIT},
		{"HeavyTrainer", ObjectMobileRP},
		{"AmphibiousTrainer", ObjectMobileST},
		{"WingedGrabber", ObjectMobileFA},
		{"TrackedGrabber", ObjectMobileTA},
		{"WheeledGrabber", ObjectMobileWA},
		{"LeggedGrabber", ObjectMobileIA},
		{"WingedShooter", ObjectMobileFC},
		{"TrackedShooter", ObjectMobileTC},
		{"WheeledShooter", ObjectMobileWC},
		{"LeggedShooter", ObjectMobileIC},
		{"WingedOrgaShooter", ObjectMobileFI},
		{"TrackedOrgaShooter", ObjectMobileTI},
		{"WheeledOrgaShooter", ObjectMobileWI},
		{"LeggedOrgaShooter", ObjectMobileII},
		{"WingedSniffer", ObjectMobileFS},
		{"TrackedSniffer", ObjectMobileTS},
		{"WheeledSniffer", ObjectMobileWS},
		{"LeggedSniffer", ObjectMobileIS},
		{"WingedBuilder", ObjectMobileFB},
		{"TrackedBuilder", ObjectMobileTB},
		{"WheeledBuilder", ObjectMobileWB},
		{"LeggedBuilder", ObjectMobileIB},
		{"Thumper", ObjectMobileRT},
		{"PhazerShooter", ObjectMobileRC},
		{"Recycler", ObjectMobileRR},
		{"Shielder", ObjectMobileRS},
		{"Subber", ObjectMobileSA},
		{"TargetBot", ObjectMobileTG},
		{"Scribbler", ObjectMobileDR},
		{"PowerSpot", ObjectMarkPower},
		{"TitaniumSpot", ObjectMarkStone},
		{"UraniumSpot", ObjectMarkUranium},
		{"PlatinumSpot", ObjectMarkUranium},
		{"KeyASpot", ObjectMarkKeyA},
		{"KeyBSpot", ObjectMarkKeyA + 1},
		{"KeyCSpot", ObjectMarkKeyA + 2},
		{"KeyDSpot", ObjectMarkKeyA + 3},
		{"WayPoint", ObjectWayPoint},
		{"BlueFlag", ObjectFlagB},
		{"RedFlag", ObjectFlagR},
		{"GreenFlag", ObjectFlagG},
		{"YellowFlag", ObjectFlagY},
		{"VioletFlag", ObjectFlagV},
		{"PowerCell", ObjectPower},
		{"NuclearCell", ObjectAtomic},
		{"FuelCell", ObjectAtomic},
		{"TitaniumOre", ObjectStone},
		{"UraniumOre", ObjectUranium},
		{"PlatinumOre", ObjectUranium},
		{"Titanium", ObjectMetal},
		{"OrgaMatter", ObjectBullet},
		{"BlackBox", ObjectBBox},
		{"KeyA", ObjectKeyA},
		{"KeyB", ObjectKeyB},
		{"KeyC", ObjectKeyC},
		{"KeyD", ObjectKeyD},
		{"TNT", ObjectTNT},
		{"Mine", ObjectBomb},
		{"Firework", ObjectWinFire},
		{"Bag", ObjectBag},
	}

	for i := 0; i < PlantCount; i++ {
		names = append(names, objectName{fmt.Sprintf("Greenery%d", i), ObjectPlant0 + ObjectType(i)})
	}
	for i := 0; i < TreeCount; i++ {
		names = append(names, objectName{fmt.Sprintf("Tree%d", i), ObjectTree0 + ObjectType(i)})
	}

	names = append(names,
		objectName{"Mushroom1", ObjectMushroom1},
		objectName{"Mushroom2", ObjectMushroom2},
		objectName{"Home", ObjectHome1},
		objectName{"Derrick", ObjectDerrick},
		objectName{"BotFactory", ObjectFactory},
		objectName{"PowerStation", ObjectStation},
		objectName{"Converter", ObjectConvert},
		objectName{"RepairCenter", ObjectRepair},
		objectName{"Destroyer", ObjectDestroyer},
		objectName{"DefenseTower", ObjectTower},
		objectName{"AlienNest", ObjectNest},
		objectName{"ResearchCenter", ObjectResearch},
		objectName{"RadarStation", ObjectRadar},
		objectName{"ExchangePost", ObjectInfo},
		objectName{"PowerPlant", ObjectEnergy},
		objectName{"AutoLab", ObjectLabo},
		objectName{"NuclearPlant", ObjectNuclear},
		objectName{"FuelCellPlant", ObjectNuclear},
		objectName{"PowerCaptor", ObjectPara},
		objectName{"Vault", ObjectSafe},
		objectName{"Houston", ObjectHuston},
		objectName{"Target1", ObjectTarget1},
		objectName{"Target2", ObjectTarget2},
		objectName{"StartArea", ObjectStart},
		objectName{"GoalArea", ObjectEnd},
		objectName{"AlienQueen", ObjectMother},
		objectName{"AlienEgg", ObjectEgg},
		objectName{"AlienAnt", ObjectAnt},
		objectName{"AlienSpider", ObjectSpider},
		objectName{"AlienWasp", ObjectBee},
		objectName{"AlienWorm", ObjectWorm},
		objectName{"WreckBotw1", ObjectRuinMobileW1},
		objectName{"WreckBotw2", ObjectRuinMobileW2},
		objectName{"WreckBott1", ObjectRuinMobileT1},
		objectName{"WreckBott2", ObjectRuinMobileT2},
		objectName{"WreckBotr1", ObjectRuinMobileR1},
		objectName{"WreckBotr2", ObjectRuinMobileR2},
		objectName{"RuinBotFactory", ObjectRuinFactory},
		objectName{"RuinDoor", ObjectRuinDoor},
		objectName{"RuinSupport", ObjectRuinSupport},
		objectName{"RuinRadar", ObjectRuinRadar},
		objectName{"RuinConvert", ObjectRuinConvert},
		objectName{"RuinBaseCamp", ObjectRuinBase},
		objectName{"RuinHeadCamp", ObjectRuinHead},
	)

	for i := 0; i < BarrierCount; i++ {
		names = append(names, objectName{fmt.Sprintf("Barrier%d", i), ObjectBarrier0 + ObjectType(i)})
	}
	for i := 0; i < BarricadeCount; i++ {
		names = append(names, objectName{fmt.Sprintf("Barricade%d", i), ObjectBarricade0 + ObjectType(i)})
	}
	for i := 0; i < TeenCount; i++ {
		name := fmt.Sprintf("Teen%d", i)
		if i == 34 {
			name = "Stone"
		}
		names = append(names, objectName{name, ObjectTeen0 + ObjectType(i)})
	}
	for i := 0; i < QuartzCount; i++ {
		names = append(names, objectName{fmt.Sprintf("Quartz%d", i), ObjectQuartz0 + ObjectType(i)})
	}
	for i := 0; i < RootCount; i++ {
		names = append(names, objectName{fmt.Sprintf("MegaStalk%d", i), ObjectRoot0 + ObjectType(i)})
	}

	apollo := []string{"ApolloLEM", "ApolloJeep", "ApolloFlag", "ApolloModule", "ApolloAntenna"}
	for i, name := range apollo {
		names = append(names, objectName{name, ObjectApollo1 + ObjectType(i)})
	}

	return append(names,
		objectName{"Me", ObjectHuman},
		objectName{"Tech", ObjectTech},
		objectName{"MissionController", ObjectController},
	)
}

var (
	objectByName = map[string]ObjectType{}
	nameByObject = map[ObjectType]string{}
)

func init() {
	for _, n := range objectNames {
		objectByName[n.name] = n.typ
		if n.typ == ObjectNull {
			continue
		}
		if _, ok := nameByObject[n.typ]; !ok {
			nameByObject[n.typ] = n.name
		}
	}
}

// ObjectTypeByName looks up a symbolic object name. Names are case-sensitive.
func ObjectTypeByName(name string) (ObjectType, bool) {
	t, ok := objectByName[name]
	return t, ok
}

// FromObjectType renders t with its canonical name, or as a decimal integer
// when it has none.
func FromObjectType(t ObjectType) string {
	if name, ok := nameByObject[t]; ok {
		return name
	}
	return strconv.Itoa(int(t))
}

// ObjectTypeNames returns every symbolic name, aliases included.
func ObjectTypeNames() []string {
	out := make([]string, 0, len(objectNames))
	for _, n := range objectNames {
		out = append(out, n.name)
	}
	return out
}

func (t ObjectType) String() string {
	return FromObjectType(t)
}

// IsVehicle reports whether t is a controllable robot.
func (t ObjectType) IsVehicle() bool {
	return (t >= ObjectMobileWT && t <= ObjectMobileIB) || (t >= ObjectMobileRT && t <= ObjectMobileDR)
}

// IsAlien reports whether t is one of the insect enemies.
func (t ObjectType) IsAlien() bool {
	return t >= ObjectMother && t <= ObjectWorm
}

// IsEnergyCell reports whether t stores energy on its own.
func (t ObjectType) IsEnergyCell() bool {
	return t == ObjectPower || t == ObjectAtomic
}
