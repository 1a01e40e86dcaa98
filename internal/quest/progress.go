package quest

import (
	"fmt"
	"time"

	"github.com/osse101/QuestCraft_Go/internal/domain"
)

// ProjectProgress computes the display state of a quest timer at now.
// It has no side effects; callers poll it on their own cadence.
func ProjectProgress(q domain.Quest, now time.Time) domain.QuestProgress {
	p := domain.QuestProgress{
		Quest:     q,
		Remaining: q.Duration(),
	}

	if !q.IsStarted() {
		p.RemainingText = TextNotStarted
		return p
	}
	p.Started = true

	duration := q.Duration()
	elapsed := now.Sub(*q.StartTime)
	if elapsed < 0 {
		elapsed = 0
	}
	p.Elapsed = elapsed

	if duration <= 0 {
		p.Percent = 100
	} else {
		p.Percent = min(float64(elapsed)/float64(duration)*100, 100)
	}

	p.Remaining = max(duration-elapsed, 0)
	p.Eligible = elapsed >= RequiredElapsed(q)
	p.Finished = p.Percent >= 100

	if p.Finished {
		p.RemainingText = TextTimeUp
	} else {
		p.RemainingText = FormatRemaining(p.Remaining)
	}

	return p
}

// FormatRemaining renders a countdown with minute precision
func FormatRemaining(d time.Duration) string {
	return FormatMinutes(int(d / time.Minute))
}

// FormatMinutes renders minutes as "45 min", "2h" or "1h30m"
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}

	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%dm", h, m)
}
