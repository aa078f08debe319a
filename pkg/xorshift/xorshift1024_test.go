package xorshift

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Reference outputs for seed [s; 16], s = 1477777179826044140,
// calculated from https://github.com/astocko/xorshift-cpp .
// The repeated scalar seed makes early outputs cycle, that is expected.
var xorshift1024Golden = []uint64{
	14360464905097655832, 10515520027797512354, 12277485841648819968,
	5975068082386226908, 14360464905097655832, 10515520027797512354,
	12277485841648819968, 5975068082386226908, 14360464905097655832,
	10515520027797512354, 12277485841648819968, 5975068082386226908,
	14360464905097655832, 10515520027797512354, 12277485841648819968,
	5975068082386226908, 16155457212423715006, 16973689320641693688,
	11981506001797128964, 13241400995114197981, 2158488016667357978,
	3377935610872016481, 12277485841648819968, 5975068082386226908,
	16155457212423715006, 16973689320641693688, 11981506001797128964,
	13241400995114197981, 2158488016667357978, 3377935610872016481,
	12277485841648819968, 5975068082386226908, 3862476215600981850,
	666405138486472370, 2467704680056122713, 18070567468833369740,
	14135306694933672725, 3377935610872016481, 12277485841648819968,
	5975068082386226908, 3862476215600981850, 666405138486472370,
	2467704680056122713, 18070567468833369740, 14135306694933672725,
	3377935610872016481, 12277485841648819968, 5975068082386226908,
	812945179660782235, 14943324017293890156,
}

func TestXorshift1024Golden(t *testing.T) {
	g, err := NewXorshift1024(repeatSeed(1477777179826044140, 16))
	require.NoError(t, err)
	requireGolden(t, g, xorshift1024Golden)
}

func TestXorshift1024ReseedResetsIndex(t *testing.T) {
	g, err := NewXorshift1024(repeatSeed(1477777179826044140, 16))
	require.NoError(t, err)
	draw(g, 5) // leave the ring index mid-cycle
	require.NotZero(t, g.p)
	require.NoError(t, g.Reseed(repeatSeed(1477777179826044140, 16)))
	require.Zero(t, g.p)
	requireGolden(t, g, xorshift1024Golden)
}

func TestXorshift1024JumpKeepsFrame(t *testing.T) {
	g := NewXorshift1024From(NewSplitMix64(0xC0FFEE))
	draw(g, 5)
	p := g.p
	g.Jump(1)
	// 1024 internal transitions are a whole number of ring revolutions
	require.Equal(t, p, g.p)
}

func TestXorshift1024Copy(t *testing.T) {
	g := NewXorshift1024From(NewSplitMix64(0xC0FFEE))
	draw(g, 21)
	snapshot := *g
	fromCopy := draw(&snapshot, 40)
	require.Equal(t, fromCopy, draw(g, 40))
}
