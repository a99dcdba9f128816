package enum

// RankingSort selects the score field a leaderboard is ordered by.
//
//go:generate go tool enumer -type=RankingSort -trimprefix=RankingSort -transform=snake-upper -json
type RankingSort int

const (
	RankingSortTotal RankingSort = iota
	RankingSortMonthly
)

// Column returns the fan_scores column the sort orders by.
func (s RankingSort) Column() string {
	if s == RankingSortMonthly {
		return "monthly_score"
	}
	return "total_score"
}
