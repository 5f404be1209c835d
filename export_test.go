package breadth_test

import (
	"testing"

	"github.com/edwinsyarief/breadth"
	"github.com/edwinsyarief/breadth/wide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -run ^TestExportRawOrder$ . -count 1
func TestExportRawOrder(t *testing.T) {
	s := breadth.NewTransformStore(1)
	ids := make([]breadth.Index, 21)
	for i := range ids {
		ids[i] = s.Push(wide.Translation(vec(float32(i), 0, 0)), wide.Vec3{}, wide.Vec3{})
	}

	raw := s.ExportRaw()
	require.Len(t, raw, s.Blocks()*wide.Lanes)
	for i, idx := range ids {
		assert.Equal(t, idx, breadth.IndexAt(i))
		assert.Equal(t, float32(i), raw[idx.Flat()].Translation().X())
	}
	for i := len(ids); i < len(raw); i++ {
		assert.Equal(t, wide.Mat4{}, raw[i], "unwritten lane %d", i)
	}
}

func TestExportRawMarkerAtKnownIndex(t *testing.T) {
	s := breadth.NewTransformStore(1)
	for range 30 {
		s.Push(wide.Identity(), wide.Vec3{}, wide.Vec3{})
	}
	target := breadth.Index{Block: 2, Lane: 6}
	var marker wide.Mat4
	for c := range marker {
		marker[c] = 42 + float32(c)
	}
	s.Set(target, marker)

	raw := s.ExportRaw()
	for i, m := range raw {
		if i == 22 {
			assert.Equal(t, marker, m)
			continue
		}
		assert.NotEqual(t, marker, m)
	}
}

func TestExportIntoReusesBuffer(t *testing.T) {
	s := breadth.NewPositionStore(1)
	for i := range 9 {
		s.Push(vec(float32(i), 0, 0), wide.Vec3{}, wide.Vec3{})
	}
	buf := make([]wide.Vec3, 0, 64)
	out := s.ExportInto(buf)
	require.Len(t, out, 16)
	assert.Same(t, &buf[:1][0], &out[0])
	assert.Equal(t, vec(8, 0, 0), out[8])

	small := make([]wide.Vec3, 2)
	out = s.ExportInto(small)
	assert.Len(t, out, 16)
}
