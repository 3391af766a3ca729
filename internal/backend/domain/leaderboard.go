package domain

import "fmt"

// LeaderboardEntry is computed per query and never stored.
type LeaderboardEntry struct {
	TenantKey    string
	DisplayName  string
	WorkoutCount int64
	MemberSince  int64 // epoch ns
}

type Period string

const (
	PeriodAllTime Period = "all_time"
	PeriodMonth   Period = "month"
	PeriodWeek    Period = "week"
)

// ParsePeriod accepts the leaderboard period names. An empty string means
// all time.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case "":
		return PeriodAllTime, nil
	case PeriodAllTime, PeriodMonth, PeriodWeek:
		return p, nil
	default:
		return "", fmt.Errorf("unknown period %q", s)
	}
}
