package simd

func addGeneric[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subGeneric[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulGeneric[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func divGeneric(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

func addScalarGeneric[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] + s
	}
}

func subScalarGeneric[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] - s
	}
}

func mulScalarGeneric[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

func divScalarGeneric(dst, a []float64, s float64) {
	for i := range dst {
		dst[i] = a[i] / s
	}
}

func sumGeneric[T Number](a []T) T {
	var ret T
	for _, v := range a {
		ret += v
	}
	return ret
}

func dotGeneric[T Number](a, b []T) T {
	var ret T
	for i := range a {
		ret += a[i] * b[i]
	}
	return ret
}
