package radixsort

// Key mapping shared by all passes. Every element is viewed as a uint64 key
// whose unsigned order matches the ascending order of the element type, so
// digit extraction never shifts a negative value.

// Integer enumerates the fixed-width key types the engine sorts.
type Integer interface {
	int32 | int64 | uint32 | uint64
}

// keyParams returns the mask selecting T's value bits within a uint64 and
// the XOR bias that maps T's order onto unsigned order: the sign bit for
// signed types, zero for unsigned types.
func keyParams[T Integer]() (mask, bias uint64) {
	var zero T
	switch any(zero).(type) {
	case int32:
		return 1<<32 - 1, 1 << 31
	case int64:
		return 1<<64 - 1, 1 << 63
	case uint32:
		return 1<<32 - 1, 0
	case uint64:
		return 1<<64 - 1, 0
	}
	return 0, 0
}

// unsignedKey maps v to its order-preserving uint64 key. The uint64
// conversion sign-extends signed values; the mask discards the extension
// and the bias flips the sign bit.
func unsignedKey[T Integer](v T, mask, bias uint64) uint64 {
	return (uint64(v) & mask) ^ bias
}

// radixDigit extracts the 8-bit digit at the given shift from v's key.
func radixDigit[T Integer](v T, shift uint, mask, bias uint64) int {
	return int(((uint64(v)&mask)^bias)>>shift) & digitMask
}
