package vector

//go:generate go run ../../cmd/swizzlegen --manifest swizzle.yaml --out .

// Zero is the index Get2 and Get3 read as a literal 0 component.
const Zero = -1

func component[V Vector](v V, i int) float32 {
	if i == Zero {
		return 0
	}
	return v[i]
}

// Get2 builds a Vec2 from the components of v at indices i and j.
// It panics if an index is outside v and not Zero.
func Get2[V Vector](v V, i, j int) Vec2 {
	return Vec2{component(v, i), component(v, j)}
}

// Get3 builds a Vec3 from the components of v at indices i, j and k.
func Get3[V Vector](v V, i, j, k int) Vec3 {
	return Vec3{component(v, i), component(v, j), component(v, k)}
}

// AxisIndex maps a swizzle letter to its component index. The letter '0'
// maps to Zero.
func AxisIndex(axis byte) (int, bool) {
	switch axis {
	case 'x', 'X':
		return 0, true
	case 'y', 'Y':
		return 1, true
	case 'z', 'Z':
		return 2, true
	case '0':
		return Zero, true
	default:
		return 0, false
	}
}
