package bdelta

import (
	"bytes"
	"fmt"
	"testing"
)

func deltaPairSet() []struct {
	name   string
	base   []byte
	target []byte
} {
	shiftBase := make([]byte, 4096)
	fillPseudoRandom(shiftBase, 41)
	shifted := append(append([]byte(nil), shiftBase[100:]...), shiftBase[:100]...)

	editBase := make([]byte, 8192)
	fillPseudoRandom(editBase, 42)
	edited := append([]byte(nil), editBase...)
	for i := 0; i < len(edited); i += 997 {
		edited[i] ^= 0x55
	}

	disjointBase := make([]byte, 10000)
	disjointTarget := make([]byte, 10000)
	fillPseudoRandom(disjointBase, 43)
	fillPseudoRandom(disjointTarget, 44)

	identical := make([]byte, 70000)
	fillPseudoRandom(identical, 45)

	partial := []byte("partial tail block here")

	return []struct {
		name   string
		base   []byte
		target []byte
	}{
		{name: "identical-short", base: []byte("hello world"), target: []byte("hello world")},
		{name: "identical-long", base: identical, target: identical},
		{name: "shifted", base: shiftBase, target: shifted},
		{name: "sparse-edits", base: editBase, target: edited},
		{name: "disjoint-random", base: disjointBase, target: disjointTarget},
		{name: "prefix-insert", base: []byte("abcdefghijklmnop"), target: []byte("XYZabcdefghijklmnop")},
		{name: "suffix-append", base: []byte("abcdefghijklmnop"), target: []byte("abcdefghijklmnop!")},
		{name: "single-bytes", base: []byte{0xAB}, target: []byte{0xCD}},
		{name: "partial-tail", base: partial, target: partial},
		{name: "zeros-doubled", base: make([]byte, 1024), target: make([]byte, 2048)},
		{name: "repeated-pattern", base: bytes.Repeat([]byte("abc123"), 2000), target: bytes.Repeat([]byte("abc123"), 2300)},
	}
}

func TestDiffApply_RoundTrip(t *testing.T) {
	for _, pair := range deltaPairSet() {
		t.Run(pair.name, func(t *testing.T) {
			delta, err := Diff(pair.base, pair.target, nil)
			if err != nil {
				t.Fatalf("Diff failed: %v", err)
			}

			baseSize, targetSize, err := DeltaSizes(delta)
			if err != nil {
				t.Fatalf("DeltaSizes failed: %v", err)
			}
			if baseSize != len(pair.base) || targetSize != len(pair.target) {
				t.Fatalf("header sizes (%d, %d), want (%d, %d)", baseSize, targetSize, len(pair.base), len(pair.target))
			}

			out, err := Apply(pair.base, delta)
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			if !bytes.Equal(out, pair.target) {
				t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(pair.target))
			}

			again, err := Diff(pair.base, pair.target, nil)
			if err != nil {
				t.Fatalf("second Diff failed: %v", err)
			}
			if !bytes.Equal(delta, again) {
				t.Fatal("encoding is not deterministic")
			}
		})
	}
}

func TestDiffApply_RoundTripAcrossSizes(t *testing.T) {
	for _, baseLen := range []int{1, 15, 16, 17, 255, 4096, 65536} {
		for _, targetLen := range []int{1, 16, 31, 4096, 70000} {
			name := fmt.Sprintf("base-%d/target-%d", baseLen, targetLen)
			t.Run(name, func(t *testing.T) {
				base := make([]byte, baseLen)
				target := make([]byte, targetLen)
				fillPseudoRandom(base, uint64(baseLen)*2654435761)
				fillPseudoRandom(target, uint64(targetLen)*40503)
				copy(target, base) // shared prefix so the delta can use COPYs, not only literals

				delta, err := Diff(base, target, nil)
				if err != nil {
					t.Fatalf("Diff failed: %v", err)
				}

				out, err := Apply(base, delta)
				if err != nil {
					t.Fatalf("Apply failed: %v", err)
				}
				if !bytes.Equal(out, target) {
					t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(target))
				}
			})
		}
	}
}

func FuzzDiffApplyRoundTrip(f *testing.F) {
	f.Add([]byte("hello world"), []byte("hello world"))
	f.Add([]byte("abcdefghijklmnop"), []byte("XYZabcdefghijklmnop"))
	f.Add(bytes.Repeat([]byte{0x00}, 1024), bytes.Repeat([]byte{0x00}, 2048))
	f.Add([]byte{0x01}, bytes.Repeat([]byte("abc"), 500))

	f.Fuzz(func(t *testing.T, base, target []byte) {
		if len(base) == 0 || len(target) == 0 {
			t.Skip()
		}
		if len(base) > 1<<20 || len(target) > 1<<20 {
			t.Skip()
		}

		delta, err := Diff(base, target, nil)
		if err != nil {
			t.Fatalf("Diff failed: %v", err)
		}

		out, err := Apply(base, delta)
		if err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		if !bytes.Equal(out, target) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(target))
		}

		again, err := Diff(base, target, nil)
		if err != nil {
			t.Fatalf("second Diff failed: %v", err)
		}
		if !bytes.Equal(delta, again) {
			t.Fatal("encoding is not deterministic")
		}
	})
}
