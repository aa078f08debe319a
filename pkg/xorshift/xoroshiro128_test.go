package xorshift

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Reference outputs for seed [s, s], s = 1477776328140003287,
// calculated from https://github.com/astocko/xorshift-cpp .
var xoroshiro128Golden = []uint64{
	2955552656280006574, 16972449677822927371, 7745721154813139207,
	12997958984192882321, 4860378213520716854, 8726511682199311786,
	4967513430844037468, 8198976591537859742, 9550424487982531115,
	4998682132896022152, 13530700387126949659, 4863306358944123927,
	6496460551288602950, 6300357993177847246, 12981686428016233582,
	12822865705859271257, 2796743621789288691, 8661416515684566800,
	11445987918223307471, 1790853738844129809, 2512856687931852193,
	16961358987206987195, 16831923336886883616, 1799620397890053848,
	4161295844397818624, 11706748128305355888, 12617353356118917788,
	8547805800213650247, 10603793685490426181, 2685147166973982615,
	11631827950742619990, 17869005055181116877, 2020111105125139909,
	16554904763398876336, 9181122027598760409, 9525691846569931390,
	12672329911556000760, 1151541992527799435, 4599060499520055258,
	221771256380528480, 1278551507256768851, 6765526366205621730,
	17926663798966796569, 2326731362433357863, 3573739488452626027,
	12112678412767368200, 11945823449132469584, 18281508020577789940,
	17522627411608091340, 6715575954761285513,
}

func TestXoroshiro128Golden(t *testing.T) {
	g, err := NewXoroshiro128(repeatSeed(1477776328140003287, 2))
	require.NoError(t, err)
	requireGolden(t, g, xoroshiro128Golden)
}

func TestXoroshiro128ReseedInPlace(t *testing.T) {
	g, err := NewXoroshiro128([]uint64{1, 2})
	require.NoError(t, err)
	draw(g, 10)
	require.NoError(t, g.Reseed(repeatSeed(1477776328140003287, 2)))
	requireGolden(t, g, xoroshiro128Golden)
}

func TestXoroshiro128Copy(t *testing.T) {
	g, err := NewXoroshiro128([]uint64{3, 5})
	require.NoError(t, err)
	draw(g, 7)
	snapshot := *g
	fromCopy := draw(&snapshot, 20)
	require.Equal(t, fromCopy, draw(g, 20))
}

// Rotations must wrap correctly at boundary values.
func TestXoroshiro128RotateBoundary(t *testing.T) {
	g, err := NewXoroshiro128([]uint64{1 << 63, 1})
	require.NoError(t, err)
	require.Equal(t, uint64(1<<63)+1, g.Next64())
	// rotl(1<<63, 55) == 1<<54; s1 after xor is (1<<63)|1
	s1 := uint64(1<<63 | 1)
	require.Equal(t, uint64(1<<54)^s1^(s1<<14), g.s[0])
}
