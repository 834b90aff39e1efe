package roomgraph

import "github.com/leonelquinteros/gotext"

// RoomKind is the role a room plays in the dungeon
type RoomKind int

// Room kinds
const (
	Start RoomKind = iota
	Normal
	Battle
	Treasure
	Heal
	Boss
)

// invalidKind is reported for ids that are not part of the graph
const invalidKind RoomKind = -1

// ChainKinds are the kinds drawn for rooms between the start and the boss
var ChainKinds = []RoomKind{Normal, Battle, Treasure}

// String returns the string representation of a room kind
func (k RoomKind) String() string {
	switch k {
	case Start:
		return "Start"
	case Normal:
		return "Normal"
	case Battle:
		return "Battle"
	case Treasure:
		return "Treasure"
	case Heal:
		return "Heal"
	case Boss:
		return "Boss"
	default:
		return "Unknown"
	}
}

// Label returns the localised display name (translation key ROOM_<KIND>)
func (k RoomKind) Label() string {
	switch k {
	case Start:
		return gotext.Get("ROOM_START")
	case Normal:
		return gotext.Get("ROOM_NORMAL")
	case Battle:
		return gotext.Get("ROOM_BATTLE")
	case Treasure:
		return gotext.Get("ROOM_TREASURE")
	case Heal:
		return gotext.Get("ROOM_HEAL")
	case Boss:
		return gotext.Get("ROOM_BOSS")
	default:
		return gotext.Get("ROOM_UNKNOWN")
	}
}
