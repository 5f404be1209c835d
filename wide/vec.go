package wide

// Component counts of the packed value types.
const (
	Vec3Width = 3
	Mat4Width = 16

	// TranslationOffset is the component index of the translation x cell
	// in a column-major Mat4; y and z follow it.
	TranslationOffset = 12
)

// Vec3 is a single-entity 3-component vector.
type Vec3 [Vec3Width]float32

// NewVec3 builds a Vec3 from its components.
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// X returns the first component.
func (v Vec3) X() float32 { return v[0] }

// Y returns the second component.
func (v Vec3) Y() float32 { return v[1] }

// Z returns the third component.
func (v Vec3) Z() float32 { return v[2] }

// Mat4 is a single-entity 4x4 matrix in column-major order: cell (col,row)
// is stored at index col*4+row, matching what GPU instance buffers expect.
type Mat4 [Mat4Width]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m[i*4+i] = 1
	}
	return m
}

// Translation returns an identity transform translated by t.
func Translation(t Vec3) Mat4 {
	m := Identity()
	copy(m[TranslationOffset:TranslationOffset+Vec3Width], t[:])
	return m
}

// At returns the cell in column col and row row.
func (m Mat4) At(col, row int) float32 {
	return m[col*4+row]
}

// Translation returns the translation part of the transform.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[TranslationOffset], m[TranslationOffset+1], m[TranslationOffset+2]}
}
