package swizzle

import (
	"fmt"
	"strings"

	"github.com/zeusync/gamemath/pkg/vector"
)

// sample holds the component values the rendered test feeds in.
var sample = map[byte]string{'x': "1", 'y': "2", 'z': "3", '0': "0"}

// Func is one named swizzle.
type Func struct {
	Name    string
	Pattern string
	Generic bool
	Indices []int
}

func newFunc(pattern string, generic bool) (Func, error) {
	pattern = strings.ToLower(pattern)
	if len(pattern) != 2 && len(pattern) != 3 {
		return Func{}, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}

	indices := make([]int, len(pattern))
	for i := 0; i < len(pattern); i++ {
		idx, ok := vector.AxisIndex(pattern[i])
		if !ok {
			return Func{}, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
		}
		if generic && idx > 1 {
			return Func{}, fmt.Errorf("%w: generic %q reads z", ErrInvalidPattern, pattern)
		}
		indices[i] = idx
	}

	return Func{
		Name:    strings.ToUpper(pattern),
		Pattern: pattern,
		Generic: generic,
		Indices: indices,
	}, nil
}

// Result is the vector type the function returns.
func (f Func) Result() string {
	return fmt.Sprintf("Vec%d", len(f.Indices))
}

func (f Func) Signature() string {
	if f.Generic {
		return "[V Vector](v V)"
	}
	return "(v Vec3)"
}

// Doc is the tuple shown in the doc comment, e.g. "x, 0, y".
func (f Func) Doc() string {
	return strings.Join(strings.Split(f.Pattern, ""), ", ")
}

// Elems is the composite literal body, e.g. "v[0], 0, v[1]".
func (f Func) Elems() string {
	parts := make([]string, len(f.Indices))
	for i, idx := range f.Indices {
		if idx == vector.Zero {
			parts[i] = "0"
		} else {
			parts[i] = fmt.Sprintf("v[%d]", idx)
		}
	}
	return strings.Join(parts, ", ")
}

// Want is the expected result for the sample input (1, 2, 3).
func (f Func) Want() string {
	parts := make([]string, len(f.Pattern))
	for i := 0; i < len(f.Pattern); i++ {
		parts[i] = sample[f.Pattern[i]]
	}
	return strings.Join(parts, ", ")
}
