// Package geometry provides the value types shared by styles and views:
// Size, Align and Edges.
//
// All types are small, copyable values. Float-bearing values compare with
// [FloatEqual], which treats two NaNs as equal so that equality stays
// reflexive on every value a setter can store.
//
// Constructors are generic over [Number], so integer and float literals work
// without conversion:
//
//	geometry.Fixed(100)               // Fixed(100px)
//	geometry.EdgesAll(4)              // 4px on every side
//	geometry.EdgesHorizontalVertical(8, 2)
//	geometry.EdgesOf(1, 2, 3, 4)      // top, right, bottom, left
package geometry
