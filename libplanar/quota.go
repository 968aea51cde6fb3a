package libplanar

import (
	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"

	"github.com/fine-structures/planar.SDK/goplanar"
)

// QuotaExpr is a face quota expression such as "tri=1 sq<=2 pent<=5".
// Terms may appear in any order and may be comma separated; a face kind left
// out keeps its default bound.
type QuotaExpr struct {
	Terms []*QuotaTerm `(@@ (","? @@)*)?`
}

type QuotaTerm struct {
	Face  string `@("tri" | "sq" | "pent" | "hex")`
	Op    string `@("=" | "<" "="?)`
	Count int32  `@Int`
}

var parseQuotaExpr = participle.MustBuild[QuotaExpr]()

// ParseQuota parses a face quota expression, starting from DefaultQuota and
// applying each term in order.
func ParseQuota(expr string) (goplanar.FaceQuota, error) {
	quota := goplanar.DefaultQuota

	Qexpr, err := parseQuotaExpr.ParseString("", expr)
	if err != nil {
		return quota, errors.Wrap(goplanar.ErrQuotaSyntax, err.Error())
	}

	for _, term := range Qexpr.Terms {
		if term.Op == "<" {
			return quota, errors.Wrapf(goplanar.ErrQuotaSyntax, "%q: use = or <=", term.Face)
		}
		if term.Count < 0 {
			return quota, errors.Wrapf(goplanar.ErrQuotaSyntax, "%q: negative count", term.Face)
		}
		switch term.Face {
		case "tri":
			quota.Tri = term.Count
		case "sq":
			quota.Sq = term.Count
		case "pent":
			quota.Pent = term.Count
		case "hex":
			// Hexagons are never bounded by quota, only by the face ceiling.
			return quota, errors.Wrap(goplanar.ErrQuotaSyntax, "hex count is unconstrained")
		}
	}

	if !quota.Feasible() {
		return quota, goplanar.ErrQuotaInfeasible
	}
	return quota, nil
}
