// Package scorer defines the capability shared by every URL risk signal.
package scorer

import "context"

// Signal is the output of a scorer: a risk score in [0,100] and the
// scorer's confidence in it, in [0,1].
type Signal struct {
	Score      float64
	Confidence float64
}

// Zero is the neutral signal a failed scorer degrades to.
var Zero = Signal{} //nolint: gochecknoglobals

// Scorer estimates the risk of a URL. Implementations must be safe for
// concurrent use. Errors are diagnostics only: callers treat a failed
// scorer as contributing Zero.
//
//go:generate mockgen -package mockscorer -source=interface.go -destination=mock/mockscorer.go *
type Scorer interface {
	Name() string
	Score(ctx context.Context, rawURL string) (Signal, error)
}

// Clamp bounds score to [0,100].
func Clamp(score float64) float64 {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}
