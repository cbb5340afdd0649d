//go:build camellia_consttime

package camellia

// ConstantTime reports whether the S-box substitutions were compiled to avoid secret-dependent memory access.
const ConstantTime = true

func f(x, k uint64) uint64 {
	return fConstantTime(x, k)
}
