package texatlas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryProcessRejectsNilInput(t *testing.T) {
	t.Parallel()

	p, err := NewTextureBinPacker(Options{})
	require.NoError(t, err)

	_, err = p.TryProcess(nil)
	assert.ErrorIs(t, err, ErrNilInput)
}

func TestTryProcessEmptySliceReturnsBorderSizedAtlas(t *testing.T) {
	t.Parallel()

	p, err := NewTextureBinPacker(Options{MinTextureSize: Size{W: 32, H: 32}})
	require.NoError(t, err)

	res, err := p.TryProcess([]SourceImage{})
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, Size{W: 1, H: 1}, res.Size)
	assert.Empty(t, res.Placements)
}

func TestTryProcessEmptySliceWithBorderReturnsBorderSumAtlas(t *testing.T) {
	t.Parallel()

	border := Thickness{Left: 4, Top: 2, Right: 6, Bottom: 3}
	p, err := NewTextureBinPacker(Options{MinTextureSize: Size{W: 32, H: 32}, Border: border})
	require.NoError(t, err)

	res, err := p.TryProcess([]SourceImage{})
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, Size{W: border.SumX(), H: border.SumY()}, res.Size)
	assert.Empty(t, res.Placements)
}

func TestTryProcessPlacementsWithinBoundsNoOverlap(t *testing.T) {
	t.Parallel()

	p, err := NewTextureBinPacker(Options{
		MinTextureSize: Size{W: 32, H: 32},
		MaxTextureSize: Size{W: 256, H: 256},
		Gap:            1,
	})
	require.NoError(t, err)

	images := []SourceImage{
		{Tag: "a", Size: Size{W: 10, H: 12}},
		{Tag: "b", Size: Size{W: 8, H: 8}},
		{Tag: "c", Size: Size{W: 5, H: 14}},
		{Tag: "d", Size: Size{W: 20, H: 20}},
	}

	res, err := p.TryProcess(images)
	require.NoError(t, err)
	require.True(t, res.Valid)
	require.Len(t, res.Placements, len(images))

	for _, pl := range res.Placements {
		assert.GreaterOrEqual(t, pl.Dest.X, 0)
		assert.GreaterOrEqual(t, pl.Dest.Y, 0)
		assert.LessOrEqual(t, pl.Dest.Right(), res.Size.W)
		assert.LessOrEqual(t, pl.Dest.Bottom(), res.Size.H)
	}

	for i := 0; i < len(res.Placements); i++ {
		for j := i + 1; j < len(res.Placements); j++ {
			assert.False(t, res.Placements[i].Dest.Intersects(res.Placements[j].Dest))
		}
	}
}

func TestTryProcessEveryInputAppearsExactlyOnce(t *testing.T) {
	t.Parallel()

	p, err := NewTextureBinPacker(Options{MaxTextureSize: Size{W: 512, H: 512}})
	require.NoError(t, err)

	images := []SourceImage{
		{Tag: 0, Size: Size{W: 12, H: 34}},
		{Tag: 1, Size: Size{W: 56, H: 12}},
		{Tag: 2, Size: Size{W: 7, H: 7}},
	}

	res, err := p.TryProcess(images)
	require.NoError(t, err)
	require.True(t, res.Valid)

	seen := map[int]bool{}
	for _, pl := range res.Placements {
		seen[pl.Source.Tag.(int)] = true
	}
	assert.Len(t, seen, len(images))
}

func TestTryProcessFailsWhenImageExceedsMaxSize(t *testing.T) {
	t.Parallel()

	p, err := NewTextureBinPacker(Options{
		MinTextureSize: Size{W: 16, H: 16},
		MaxTextureSize: Size{W: 64, H: 64},
	})
	require.NoError(t, err)

	images := []SourceImage{{Tag: "huge", Size: Size{W: 512, H: 512}}}
	res, err := p.TryProcess(images)
	require.NoError(t, err)
	assert.False(t, res.Valid)
}

func TestTryProcessUniformInputsUseGridFastPath(t *testing.T) {
	t.Parallel()

	p, err := NewTextureBinPacker(Options{
		MinTextureSize: Size{W: 16, H: 16},
		MaxTextureSize: Size{W: 256, H: 256},
	})
	require.NoError(t, err)

	images := make([]SourceImage, 9)
	for i := range images {
		images[i] = SourceImage{Tag: i, Size: Size{W: 16, H: 16}}
	}

	res, err := p.TryProcess(images)
	require.NoError(t, err)
	require.True(t, res.Valid)
	require.Len(t, res.Placements, 9)
}

func TestTryProcessRespectsBorder(t *testing.T) {
	t.Parallel()

	border := Thickness{Left: 4, Top: 4, Right: 4, Bottom: 4}
	p, err := NewTextureBinPacker(Options{
		MinTextureSize: Size{W: 32, H: 32},
		MaxTextureSize: Size{W: 256, H: 256},
		Border:         border,
	})
	require.NoError(t, err)

	images := []SourceImage{{Tag: "a", Size: Size{W: 10, H: 10}}}
	res, err := p.TryProcess(images)
	require.NoError(t, err)
	require.True(t, res.Valid)

	for _, pl := range res.Placements {
		assert.GreaterOrEqual(t, pl.Dest.X, border.Left)
		assert.GreaterOrEqual(t, pl.Dest.Y, border.Top)
		assert.LessOrEqual(t, pl.Dest.Right(), res.Size.W-border.Right)
		assert.LessOrEqual(t, pl.Dest.Bottom(), res.Size.H-border.Bottom)
	}
}

func TestTryProcessDeterministicForSameInput(t *testing.T) {
	t.Parallel()

	p, err := NewTextureBinPacker(Options{MaxTextureSize: Size{W: 256, H: 256}})
	require.NoError(t, err)

	images := []SourceImage{
		{Tag: "a", Size: Size{W: 33, H: 17}},
		{Tag: "b", Size: Size{W: 12, H: 12}},
		{Tag: "c", Size: Size{W: 40, H: 8}},
	}

	first, err := p.TryProcess(images)
	require.NoError(t, err)
	second, err := p.TryProcess(images)
	require.NoError(t, err)

	assert.Equal(t, first.Size, second.Size)
	assert.Equal(t, first.InputFingerprint, second.InputFingerprint)
}

func TestTryProcessZeroAreaImagesShortcut(t *testing.T) {
	t.Parallel()

	p, err := NewTextureBinPacker(Options{MinTextureSize: Size{W: 16, H: 16}})
	require.NoError(t, err)

	images := []SourceImage{
		{Tag: "a", Size: Size{W: 0, H: 0}},
		{Tag: "b", Size: Size{W: 0, H: 0}},
	}

	res, err := p.TryProcess(images)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, Size{W: 1, H: 1}, res.Size)
	assert.Len(t, res.Placements, 2)
}

func TestTryProcessZeroAreaImagesWithBorderShortcut(t *testing.T) {
	t.Parallel()

	border := Thickness{Left: 5, Top: 1, Right: 5, Bottom: 1}
	p, err := NewTextureBinPacker(Options{MinTextureSize: Size{W: 16, H: 16}, Border: border})
	require.NoError(t, err)

	images := []SourceImage{
		{Tag: "a", Size: Size{W: 0, H: 0}},
		{Tag: "b", Size: Size{W: 0, H: 5}},
	}

	res, err := p.TryProcess(images)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, Size{W: border.SumX(), H: border.SumY()}, res.Size)
	require.Len(t, res.Placements, 2)
	for _, pl := range res.Placements {
		assert.Equal(t, NewRect(border.Left, border.Top, 0, 0), pl.Dest)
	}
}
