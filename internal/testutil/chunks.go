package testutil

import "math/rand/v2"

// SplitBySizes cuts src into consecutive chunks of the given sizes.
// The last chunk takes whatever is left over.
func SplitBySizes(src []byte, sizes ...int) [][]byte {
	var chunks [][]byte
	for _, size := range sizes {
		size = min(size, len(src))
		chunks = append(chunks, src[:size])
		src = src[size:]
	}
	if len(src) > 0 {
		chunks = append(chunks, src)
	}
	return chunks
}

// SplitEvery cuts src into chunks of size bytes.
func SplitEvery(src []byte, size int) [][]byte {
	if size < 1 {
		size = 1
	}
	var chunks [][]byte
	for len(src) > 0 {
		n := min(size, len(src))
		chunks = append(chunks, src[:n])
		src = src[n:]
	}
	return chunks
}

// RandomChunks cuts src into chunks of 0 to maxSize bytes.
//
// The split is a pure function of seed so failures reproduce. Empty chunks
// are included on purpose.
func RandomChunks(src []byte, seed uint64, maxSize int) [][]byte {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	var chunks [][]byte
	for len(src) > 0 {
		n := min(rng.IntN(maxSize+1), len(src))
		chunks = append(chunks, src[:n])
		src = src[n:]
	}
	return chunks
}
