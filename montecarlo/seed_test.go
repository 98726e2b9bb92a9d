package montecarlo

import "testing"

// TestDeriveSeed_Streams checks that derived seeds are stable and that
// neighbouring streams and bases do not collide.
func TestDeriveSeed_Streams(t *testing.T) {
	seen := make(map[int64]uint64)
	for stream := uint64(0); stream < 1000; stream++ {
		s := deriveSeed(defaultSeed, stream)
		if s != deriveSeed(defaultSeed, stream) {
			t.Fatalf("deriveSeed(%d, %d) is not stable", defaultSeed, stream)
		}
		if prev, ok := seen[s]; ok {
			t.Fatalf("streams %d and %d derived the same seed %d", prev, stream, s)
		}
		seen[s] = stream
	}
	if deriveSeed(1, 0) == deriveSeed(2, 0) {
		t.Error("different bases must derive different seeds")
	}
}
