package ui

import (
	"strings"

	"github.com/samdwyer/delvemap/internal/floormap"
)

// Dump renders the whole floor as plain text, one rune per tile, for debug
// logs and tests. It is built entirely from the map's public query surface.
//
// Room floors are drawn by room type ('.' normal, '!' challenge, '+' player
// start, '*' treasure chamber), passages as ',', walls as '#'. Gates and
// chests override the floor rune.
func Dump(fm *floormap.FloorMap) string {
	var b strings.Builder
	for row := range fm.Grid().Rows() {
		for i := range row {
			b.WriteRune(dumpRune(fm, &row[i]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func dumpRune(fm *floormap.FloorMap, tile *floormap.Tile) rune {
	switch tile.Object.(type) {
	case floormap.ToNextLevel:
		return '>'
	case floormap.ToPrevLevel:
		return '<'
	case floormap.Chest:
		return '$'
	}

	switch tile.Kind {
	case floormap.KindWall:
		return '#'
	case floormap.KindFloor:
		id, ok := tile.Type.Room()
		if !ok {
			return ','
		}
		switch fm.Room(id).Type() {
		case floormap.RoomChallenge:
			return '!'
		case floormap.RoomPlayerStart:
			return '+'
		case floormap.RoomTreasureChamber:
			return '*'
		default:
			return '.'
		}
	default:
		return ' '
	}
}
