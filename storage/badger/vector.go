package badger

// dotProduct calculates the dot product of two vectors.
// Stored vectors are normalized at ingestion time, so this equals cosine
// similarity.
func dotProduct(a, b []float32) float32 {
	var sum float32
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	for i := 0; i < minLen; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
