package mandel

// EscapeTime returns the smallest n for which the orbit z -> z*z + z0,
// started at z0, reaches |z|^2 >= 4, or maxIter if the orbit stays bounded
// that long. A point already outside the escape radius returns 0.
func EscapeTime(z0 complex128, maxIter uint32) uint32 {
	z := z0
	var n uint32
	for real(z)*real(z)+imag(z)*imag(z) < 4.0 && n < maxIter {
		z = z*z + z0
		n++
	}
	return n
}
