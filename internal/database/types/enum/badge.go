package enum

// BadgeType identifies an achievement badge.
//
//go:generate go tool enumer -type=BadgeType -trimprefix=BadgeType -transform=snake-upper -json
type BadgeType int

const (
	// BadgeTypeTopFan goes to the monthly score leader of a lounge.
	BadgeTypeTopFan BadgeType = iota
	// BadgeTypeActiveCommenter is earned at 200 comment points in a lounge.
	BadgeTypeActiveCommenter
	// BadgeTypeContentCreator is earned at 500 post points in a lounge.
	BadgeTypeContentCreator
	// BadgeTypeQuestChampion is a quest reward badge.
	BadgeTypeQuestChampion
	// BadgeTypeFirstSteps is a quest reward badge for onboarding quests.
	BadgeTypeFirstSteps
	// BadgeTypeVoteEnthusiast is a quest reward badge for voting quests.
	BadgeTypeVoteEnthusiast
)

// BadgeInfo holds the static display data of a badge type.
type BadgeInfo struct {
	Name        string
	Description string
}

var badgeCatalog = map[BadgeType]BadgeInfo{ //nolint:gochecknoglobals // static catalogue
	BadgeTypeTopFan: {
		Name:        "Top Fan",
		Description: "Scored the most points in the lounge last month",
	},
	BadgeTypeActiveCommenter: {
		Name:        "Active Commenter",
		Description: "Earned 200 points from comments",
	},
	BadgeTypeContentCreator: {
		Name:        "Content Creator",
		Description: "Earned 500 points from posts",
	},
	BadgeTypeQuestChampion: {
		Name:        "Quest Champion",
		Description: "Completed a champion quest",
	},
	BadgeTypeFirstSteps: {
		Name:        "First Steps",
		Description: "Completed an onboarding quest",
	},
	BadgeTypeVoteEnthusiast: {
		Name:        "Vote Enthusiast",
		Description: "Completed a voting quest",
	},
}

// Info returns the catalogue entry of the badge type.
func (b BadgeType) Info() BadgeInfo {
	if info, ok := badgeCatalog[b]; ok {
		return info
	}
	return BadgeInfo{Name: b.String()}
}
