package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/coastalops/launchtours/internal/service"
)

func TestDiscountService_CreateDiscount(t *testing.T) {
	svc := service.NewDiscountService(&fakeDiscountRepo{}, nil, discardLogger())
	ctx := context.Background()

	// Codes are normalized to upper case before persistence.
	out, err := svc.CreateDiscount(ctx, "  splash10  ", 10, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Code != "SPLASH10" {
		t.Fatalf("expected normalized code SPLASH10, got %q", out.Code)
	}

	cases := []struct {
		name    string
		code    string
		percent int
	}{
		{"code too short", "AB", 10},
		{"code too long", string(make([]byte, 33)), 10},
		{"zero percent", "SAVE", 0},
		{"over 100 percent", "SAVE", 101},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateDiscount(ctx, tc.code, tc.percent, true, nil); !errors.Is(err, service.ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
		})
	}
}
