package conv

// Size is the kernel edge length.
const Size = 3

// Kernel is a 3×3 kernel stored row-major: index = row*3 + col.
type Kernel [Size * Size]float64

// Identity returns its input unchanged.
var Identity = Kernel{
	0, 0, 0,
	0, 1, 0,
	0, 0, 0,
}

// At returns the coefficient at the given row and column.
func (k Kernel) At(row, col int) float64 {
	return k[row*Size+col]
}

// Sum returns the sum of all coefficients.
func (k Kernel) Sum() float64 {
	var s float64
	for _, v := range k {
		s += v
	}
	return s
}

// Transpose swaps rows and columns.
func (k Kernel) Transpose() Kernel {
	var t Kernel
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			t[c*Size+r] = k[r*Size+c]
		}
	}
	return t
}

// Flip rotates the kernel by 180 degrees, turning correlation into
// convolution and vice versa.
func (k Kernel) Flip() Kernel {
	var f Kernel
	for i, v := range k {
		f[len(k)-1-i] = v
	}
	return f
}
