package postgres

import "testing"

func TestSanitizeLimitOffset(t *testing.T) {
	cases := []struct {
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{0, 0, defaultPageLimit, 0},
		{-1, -5, defaultPageLimit, 0},
		{10, 20, 10, 20},
	}
	for _, tc := range cases {
		l, o := sanitizeLimitOffset(tc.limit, tc.offset)
		if l != tc.wantLimit || o != tc.wantOffset {
			t.Fatalf("sanitize(%d,%d) = (%d,%d), want (%d,%d)", tc.limit, tc.offset, l, o, tc.wantLimit, tc.wantOffset)
		}
	}
}
