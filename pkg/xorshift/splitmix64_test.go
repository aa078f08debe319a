package xorshift

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Reference outputs for seed 1477776061723855037, calculated from
// https://github.com/astocko/xorshift-cpp .
var splitMix64Golden = []uint64{
	1985237415132408290, 2979275885539914483, 13511426838097143398,
	8488337342461049707, 15141737807933549159, 17093170987380407015,
	16389528042912955399, 13177319091862933652, 10841969400225389492,
	17094824097954834098, 3336622647361835228, 9678412372263018368,
	11111587619974030187, 7882215801036322410, 5709234165213761869,
	7799681907651786826, 4616320717312661886, 4251077652075509767,
	7836757050122171900, 5054003328188417616, 12919285918354108358,
	16477564761813870717, 5124667218451240549, 18099554314556827626,
	7603784838804469118, 6358551455431362471, 3037176434532249502,
	3217550417701719149, 9958699920490216947, 5965803675992506258,
	12000828378049868312, 12720568162811471118, 245696019213873792,
	8351371993958923852, 14378754021282935786, 5655432093647472106,
	5508031680350692005, 8515198786865082103, 6287793597487164412,
	14963046237722101617, 3630795823534910476, 8422285279403485710,
	10554287778700714153, 10871906555720704584, 8659066966120258468,
	9420238805069527062, 10338115333623340156, 13514802760105037173,
	14635952304031724449, 15419692541594102413,
}

func TestSplitMix64Golden(t *testing.T) {
	requireGolden(t, NewSplitMix64(1477776061723855037), splitMix64Golden)
}

func TestSplitMix64Reseed(t *testing.T) {
	g := NewSplitMix64(1)
	require.ErrorIs(t, g.Reseed(nil), ErrInsufficientSeed)

	require.NoError(t, g.Reseed([]uint64{1477776061723855037, 99}))
	requireGolden(t, g, splitMix64Golden)

	// zero state is valid for the mixer
	require.NoError(t, g.Reseed([]uint64{0}))
	require.NotZero(t, g.Next64())
}

func TestSplitMix64Next32(t *testing.T) {
	narrow, wide := NewSplitMix64(7), NewSplitMix64(7)
	for i := 0; i < 100; i++ {
		require.Equal(t, uint32(wide.Next64()), narrow.Next32(), "step #%d", i)
	}
}

func TestSplitMix64Copy(t *testing.T) {
	g := NewSplitMix64(1477776061723855037)
	snapshot := *g
	require.Equal(t, draw(g, 20), draw(&snapshot, 20))
}
