package libplanar_test

import (
	"errors"
	"testing"

	"github.com/fine-structures/planar.SDK/goplanar"
	"github.com/fine-structures/planar.SDK/libplanar"
)

func TestParseQuota(t *testing.T) {
	pass := []struct {
		expr string
		want goplanar.FaceQuota
	}{
		{"", goplanar.DefaultQuota},
		{"tri=1 sq<=2 pent<=5", goplanar.DefaultQuota},
		{"sq<=1 pent<=7", goplanar.FaceQuota{Tri: 1, Sq: 1, Pent: 7}},
		{"pent<=7, sq<=1", goplanar.FaceQuota{Tri: 1, Sq: 1, Pent: 7}},
		{"sq=0 pent=9", goplanar.FaceQuota{Tri: 1, Sq: 0, Pent: 9}},
		{"sq<=4 pent<=1", goplanar.FaceQuota{Tri: 1, Sq: 4, Pent: 1}},
	}
	for _, tc := range pass {
		quota, err := libplanar.ParseQuota(tc.expr)
		if err != nil {
			t.Fatalf("%q: %v", tc.expr, err)
		}
		if quota != tc.want {
			t.Fatalf("%q: got %v, want %v", tc.expr, quota, tc.want)
		}
	}

	fail := []struct {
		expr string
		want error
	}{
		{"sq<2", goplanar.ErrQuotaSyntax},
		{"sq == 2", goplanar.ErrQuotaSyntax},
		{"heptagon<=1", goplanar.ErrQuotaSyntax},
		{"hex<=3", goplanar.ErrQuotaSyntax},
		{"sq<=1", goplanar.ErrQuotaInfeasible},
		{"tri=0 sq<=2 pent<=5", goplanar.ErrQuotaInfeasible},
	}
	for _, tc := range fail {
		_, err := libplanar.ParseQuota(tc.expr)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%q: got %v, want %v", tc.expr, err, tc.want)
		}
	}
}
