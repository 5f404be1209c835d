// Package wide provides eight-lane float32 arithmetic and packed blocks
// built on it.
//
// A Block groups N scalar components (3 for a vector, 16 for a 4x4 matrix),
// each stored as an F32x8 holding that component for eight entities. Blocks
// only support whole-block arithmetic; single-lane access is synthesized by
// the lane codec (ClearLane, WriteLane) which multiplies or adds a mask that
// is neutral on every lane except the target one.
package wide
