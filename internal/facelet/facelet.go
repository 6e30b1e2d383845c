// Package facelet converts between a cube.State and the 54-character
// facelet string format: one color letter per sticker, in a fixed index
// order, with the six face centers pinned to a fixed color.
//
// The index tables below - which pair of facelet positions makes up each
// edge, which triple makes up each corner, and which position is each
// face's immovable center - are translated directly from the original
// source's facelet_parser, which is the one place that actually pins down
// a concrete numbering for "any fixed numbering consistent with those
// center positions".
package facelet

import (
	"fmt"

	"github.com/behren-q/qturn/internal/cube"
)

const stringLength = 54

// centers maps a fixed facelet index to the color that must appear there;
// centers never move, so this is also how a rendered facelet string picks
// its six center stickers.
var centers = [6]struct {
	index int
	color byte
}{
	{4, 'W'},
	{22, 'G'},
	{25, 'R'},
	{28, 'B'},
	{31, 'O'},
	{49, 'Y'},
}

// edgeIndexes[i] gives the two facelet positions that make up edge cubie i.
var edgeIndexes = [12][2]int{
	{24, 23},
	{13, 7},
	{26, 27},
	{37, 46},
	{3, 10},
	{16, 5},
	{40, 50},
	{48, 34},
	{32, 21},
	{19, 1},
	{30, 29},
	{43, 52},
}

// cornerIndexes[i] gives the three facelet positions that make up corner
// cubie i, read in the order that matches corner 0's entry in cornerMap.
var cornerIndexes = [8][3]int{
	{12, 11, 6},
	{14, 8, 15},
	{38, 39, 47},
	{36, 45, 35},
	{20, 0, 9},
	{18, 17, 2},
	{42, 53, 41},
	{44, 33, 51},
}

const (
	red    byte = 'R'
	white  byte = 'W'
	green  byte = 'G'
	blue   byte = 'B'
	yellow byte = 'Y'
	orange byte = 'O'
)

type edgeColors [2]byte
type cornerColors [3]byte

var edgeMap = map[edgeColors]byte{
	{red, green}: 0, {green, red}: 0x10,
	{red, white}: 1, {white, red}: 0x11,
	{red, blue}: 2, {blue, red}: 0x12,
	{red, yellow}: 3, {yellow, red}: 0x13,
	{white, green}: 4, {green, white}: 0x14,
	{blue, white}: 5, {white, blue}: 0x15,
	{blue, yellow}: 6, {yellow, blue}: 0x16,
	{yellow, green}: 7, {green, yellow}: 0x17,
	{orange, green}: 8, {green, orange}: 0x18,
	{orange, white}: 9, {white, orange}: 0x19,
	{orange, blue}: 10, {blue, orange}: 0x1a,
	{orange, yellow}: 11, {yellow, orange}: 0x1b,
}

// corner twist classes, shifted per this module's bit layout (shift 3).
const (
	cc0 byte = 0 << 3
	cc1 byte = 1 << 3
	cc2 byte = 2 << 3
)

var cornerMap = map[cornerColors]byte{
	{red, green, white}: cc0 | 0, {green, white, red}: cc1 | 0, {white, red, green}: cc2 | 0,
	{red, white, blue}: cc0 | 1, {white, blue, red}: cc1 | 1, {blue, red, white}: cc2 | 1,
	{red, blue, yellow}: cc0 | 2, {blue, yellow, red}: cc1 | 2, {yellow, red, blue}: cc2 | 2,
	{red, yellow, green}: cc0 | 3, {yellow, green, red}: cc1 | 3, {green, red, yellow}: cc2 | 3,
	{orange, white, green}: cc0 | 4, {white, green, orange}: cc1 | 4, {green, orange, white}: cc2 | 4,
	{orange, blue, white}: cc0 | 5, {blue, white, orange}: cc1 | 5, {white, orange, blue}: cc2 | 5,
	{orange, yellow, blue}: cc0 | 6, {yellow, blue, orange}: cc1 | 6, {blue, orange, yellow}: cc2 | 6,
	{orange, green, yellow}: cc0 | 7, {green, yellow, orange}: cc1 | 7, {yellow, orange, green}: cc2 | 7,
}

var (
	edgeColorsOf   = invertEdgeMap()
	cornerColorsOf = invertCornerMap()
)

func invertEdgeMap() map[byte]edgeColors {
	m := make(map[byte]edgeColors, len(edgeMap))
	for k, v := range edgeMap {
		m[v] = k
	}
	return m
}

func invertCornerMap() map[byte]cornerColors {
	m := make(map[byte]cornerColors, len(cornerMap))
	for k, v := range cornerMap {
		m[v] = k
	}
	return m
}

// Parse reads a 54-character facelet string into a cube.State.
func Parse(s string) (cube.State, error) {
	if len(s) != stringLength {
		return cube.State{}, fmt.Errorf("facelet: wrong string length %d, want %d", len(s), stringLength)
	}
	for _, c := range centers {
		if s[c.index] != c.color {
			return cube.State{}, fmt.Errorf("facelet: center at index %d should be %q, got %q", c.index, c.color, s[c.index])
		}
	}

	var state cube.State
	for i, idx := range edgeIndexes {
		key := edgeColors{s[idx[0]], s[idx[1]]}
		v, ok := edgeMap[key]
		if !ok {
			return cube.State{}, fmt.Errorf("facelet: no such edge %q/%q at indexes %d/%d", key[0], key[1], idx[0], idx[1])
		}
		state.Edges[i] = v
	}
	for i, idx := range cornerIndexes {
		key := cornerColors{s[idx[0]], s[idx[1]], s[idx[2]]}
		v, ok := cornerMap[key]
		if !ok {
			return cube.State{}, fmt.Errorf("facelet: no such corner %q/%q/%q at indexes %d/%d/%d", key[0], key[1], key[2], idx[0], idx[1], idx[2])
		}
		state.Corners[i] = v
	}
	if err := cube.Validate(state); err != nil {
		return cube.State{}, fmt.Errorf("facelet: parsed an invalid state: %w", err)
	}
	return state, nil
}

// Format renders a cube.State as a 54-character facelet string.
func Format(s cube.State) (string, error) {
	buf := make([]byte, stringLength)
	for _, c := range centers {
		buf[c.index] = c.color
	}
	for i, idx := range edgeIndexes {
		colors, ok := edgeColorsOf[s.Edges[i]]
		if !ok {
			return "", fmt.Errorf("facelet: edge slot %d has invalid byte %#02x", i, s.Edges[i])
		}
		buf[idx[0]], buf[idx[1]] = colors[0], colors[1]
	}
	for i, idx := range cornerIndexes {
		colors, ok := cornerColorsOf[s.Corners[i]]
		if !ok {
			return "", fmt.Errorf("facelet: corner slot %d has invalid byte %#02x", i, s.Corners[i])
		}
		buf[idx[0]], buf[idx[1]], buf[idx[2]] = colors[0], colors[1], colors[2]
	}
	return string(buf), nil
}
