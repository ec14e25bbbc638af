// Package types defines the shared data structures for the MegaMekLab editor.
// This package contains only type definitions — no logic, no methods.
package types

// BaseType is the chassis category selected in the base-type field.
type BaseType int

const (
	BaseStandard BaseType = iota
	BaseLAM
	BaseQuadVee
)

// MotiveType is an index into the motive list of the current base type.
// Its meaning depends on the base type.
type MotiveType int

const (
	MotiveBiped  MotiveType = 0
	MotiveQuad   MotiveType = 1
	MotiveTripod MotiveType = 2

	MotiveLAMStandard MotiveType = 0
	MotiveLAMBimodal  MotiveType = 1

	MotiveQVTracked MotiveType = 0
	MotiveQVWheeled MotiveType = 1
)

// EntityType is the concrete unit class derived from base and motive type.
type EntityType string

const (
	EntityBiped   EntityType = "biped"
	EntityQuad    EntityType = "quad"
	EntityTripod  EntityType = "tripod"
	EntityLAM     EntityType = "lam"
	EntityQuadVee EntityType = "quadvee"
)

// TechLevel is an ordered rules level. Higher values permit more equipment.
type TechLevel int

const (
	LevelIntro TechLevel = iota
	LevelStandard
	LevelAdvanced
	LevelExperimental
	LevelUnofficial
)

// TechBase identifies which faction tech an item belongs to.
type TechBase int

const (
	TechBaseAll TechBase = iota
	TechBaseIS
	TechBaseClan
)

// EngineType identifies an engine construction.
type EngineType int

const (
	EngineCombustion EngineType = iota
	EngineNormal
	EngineXL
	EngineXXL
	EngineFuelCell
	EngineLight
	EngineCompact
	EngineFission
)

// EngineFlag modifies an engine type.
type EngineFlag int

const (
	EngineFlagClan  EngineFlag = 1 << 0
	EngineFlagLarge EngineFlag = 1 << 2
)

// Engine is a rated engine instance. Two engines are the same option when
// Type and Flags match; Rating is carried separately by the chassis.
type Engine struct {
	Rating int        `json:"rating"`
	Type   EngineType `json:"type"`
	Flags  EngineFlag `json:"flags"`
}

// StructureType identifies an internal structure construction.
type StructureType int

const (
	StructureStandard StructureType = iota
	StructureIndustrial
	StructureEndoSteel
	StructureEndoPrototype
	StructureReinforced
	StructureComposite
	StructureEndoComposite
)

// Structure is a structure type in a specific tech base.
type Structure struct {
	Type StructureType `json:"type"`
	Clan bool          `json:"clan"`
}

// GyroType identifies a gyro. Values 0..GyroNone form the general catalog.
type GyroType int

const (
	GyroStandard GyroType = iota
	GyroXL
	GyroCompact
	GyroHeavyDuty
	GyroNone
	GyroSuperheavy
)

// CockpitType identifies a cockpit.
type CockpitType int

const (
	CockpitStandard CockpitType = iota
	CockpitTorsoMounted
	CockpitSmall
	CockpitCommandConsole
	CockpitDual
	CockpitIndustrial
	CockpitPrimitive
	CockpitPrimitiveIndustrial
	CockpitSuperheavy
	CockpitSuperheavyTripod
	CockpitTripod
	CockpitInterface
	CockpitVRRP
	CockpitQuadVee
	CockpitSuperheavyIndustrial
)

// Enhancement is the lookup key of a myomer enhancement. The empty key is
// the "none" choice.
type Enhancement string

const (
	EnhancementNone          Enhancement = ""
	EnhancementISMASC        Enhancement = "ISMASC"
	EnhancementClanMASC      Enhancement = "CLMASC"
	EnhancementTSM           Enhancement = "TSM"
	EnhancementSupercooled   Enhancement = "ISSuperCooledMyomer"
	EnhancementIndustrialTSM Enhancement = "Industrial TSM"
)

// Location is a hit location on a Mech.
type Location int

const (
	LocHead Location = iota
	LocCenterTorso
	LocRightTorso
	LocLeftTorso
	LocRightArm
	LocLeftArm
	LocRightLeg
	LocLeftLeg
	LocCenterLeg
)

// Armor holds front and rear armor points for one location.
type Armor struct {
	Front int `json:"front"`
	Rear  int `json:"rear,omitempty"`
}

// UnitKindMech is the only unit kind the editor accepts.
const UnitKindMech = "Mech"

// Unit is the mutable record of one configurable Mech. It is owned by the
// shell and shared by reference with every tab.
type Unit struct {
	Kind          string             `json:"kind"`
	Chassis       string             `json:"chassis"`
	Model         string             `json:"model"`
	Year          int                `json:"year"`
	TechLevel     TechLevel          `json:"tech_level"`
	Clan          bool               `json:"clan"`
	Tonnage       float64            `json:"tonnage"`
	Base          BaseType           `json:"base"`
	Motive        MotiveType         `json:"motive"`
	Primitive     bool               `json:"primitive,omitempty"`
	Industrial    bool               `json:"industrial,omitempty"`
	Omni          bool               `json:"omni,omitempty"`
	Engine        Engine             `json:"engine"`
	Gyro          GyroType           `json:"gyro"`
	Cockpit       CockpitType        `json:"cockpit"`
	Structure     Structure          `json:"structure"`
	Enhancement   Enhancement        `json:"enhancement,omitempty"`
	FullHeadEject bool               `json:"full_head_eject,omitempty"`
	Armor         map[Location]Armor `json:"armor"`
}

// EventType names a semantic chassis change.
type EventType string

const (
	EventTonnageChanged       EventType = "tonnage_changed"
	EventOmniChanged          EventType = "omni_changed"
	EventTypeChanged          EventType = "type_changed"
	EventStructureChanged     EventType = "structure_changed"
	EventEngineChanged        EventType = "engine_changed"
	EventGyroChanged          EventType = "gyro_changed"
	EventCockpitChanged       EventType = "cockpit_changed"
	EventEnhancementChanged   EventType = "enhancement_changed"
	EventFullHeadEjectChanged EventType = "full_head_eject_changed"
	EventResetChassis         EventType = "reset_chassis"
	EventArmorChanged         EventType = "armor_changed"
)

// Event is emitted once per user-facing edit.
type Event struct {
	Type EventType
	Data map[string]any
}

// Channel is a named refresh region of the application shell.
type Channel string

const (
	ChannelHeader    Channel = "header"
	ChannelStatus    Channel = "status"
	ChannelStructure Channel = "structure"
	ChannelArmor     Channel = "armor"
	ChannelWeapons   Channel = "weapons"
	ChannelBuild     Channel = "build"
	ChannelAll       Channel = "all"
)

// Command is the parsed representation of an editor command line.
type Command struct {
	Verb string
	Args []string
}

// Result is the output of a single editor step.
type Result struct {
	Events    []Event
	Refreshed []Channel
	Output    []string
}
