package playback

import "testing"

func TestORPIndexBuckets(t *testing.T) {
	cases := []struct {
		length int
		want   int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{5, 1},
		{6, 2},
		{9, 2},
		{10, 3},
		{13, 3},
		{14, 4},
		{40, 4},
	}
	for _, tc := range cases {
		if got := ORPIndex(tc.length); got != tc.want {
			t.Fatalf("ORPIndex(%d) = %d, want %d", tc.length, got, tc.want)
		}
	}
}

func TestORPIndexWithinWord(t *testing.T) {
	for length := 1; length <= 60; length++ {
		idx := ORPIndex(length)
		if idx < 0 || idx > length-1 {
			t.Fatalf("ORPIndex(%d) = %d out of range [0, %d]", length, idx, length-1)
		}
	}
}
