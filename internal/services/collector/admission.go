package collector

import (
	"slices"
	"time"
)

const (
	choiceMarker = "body"
	storyParent  = "game"
	storyChild   = "story"
)

// admission decides whether a candidate is a genuine new answer. Checks run
// in order: recent duplicate, cooldown, record path.
type admission struct {
	recent   *recentSet
	cooldown time.Duration
	last     time.Time
	admitted bool
}

func newAdmission(window int, cooldown time.Duration) *admission {
	return &admission{
		recent:   newRecentSet(window),
		cooldown: cooldown,
	}
}

// admit records key and now when the candidate passes. path is ignored when
// checkPath is false.
func (a *admission) admit(key string, path []string, now time.Time, checkPath bool) Rejection {
	if a.recent.Contains(key) {
		return RejectionDuplicate
	}

	if a.admitted && now.Sub(a.last) < a.cooldown {
		return RejectionCooldown
	}

	if checkPath && !isChoicePath(path) {
		return RejectionNotChoice
	}

	a.recent.Add(key)
	a.last = now
	a.admitted = true
	return RejectionNone
}

// isChoicePath reports whether a record path looks like an executing choice:
// it passes through a "body" segment and not through "game.story", which is
// where the engine keeps loaded story data.
func isChoicePath(path []string) bool {
	if !slices.Contains(path, choiceMarker) {
		return false
	}

	for i := 0; i+1 < len(path); i++ {
		if path[i] == storyParent && path[i+1] == storyChild {
			return false
		}
	}
	return true
}
