package wide

// Lanes is the number of entities packed side by side in one block.
const Lanes = 8

// F32x8 holds one scalar component for eight lanes.
type F32x8 [Lanes]float32

// Splat broadcasts v to every lane.
func Splat(v float32) F32x8 {
	return F32x8{v, v, v, v, v, v, v, v}
}

// Add returns the lane-wise sum a+b.
func (a F32x8) Add(b F32x8) F32x8 {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

// Mul returns the lane-wise product a*b.
func (a F32x8) Mul(b F32x8) F32x8 {
	for i := range a {
		a[i] *= b[i]
	}
	return a
}

// MulAdd returns a*b + c lane-wise. The product is rounded to float32 before
// the add, so the result never depends on whether the compiler fuses it.
func (a F32x8) MulAdd(b, c F32x8) F32x8 {
	for i := range a {
		a[i] = float32(a[i]*b[i]) + c[i]
	}
	return a
}

// clearMask is 1 on every lane except lane, which is 0.
func clearMask(lane int) F32x8 {
	m := Splat(1)
	m[lane] = 0
	return m
}

// writeMask is 0 on every lane except lane, which holds v.
func writeMask(lane int, v float32) F32x8 {
	var m F32x8
	m[lane] = v
	return m
}
