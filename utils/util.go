package utils

func Filter[A any](arr []A, f func(A) bool) []A {
	res := make([]A, 0)
	for _, v := range arr {
		if f(v) {
			res = append(res, v)
		}
	}
	return res
}
