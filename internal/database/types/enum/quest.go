package enum

// QuestType represents how a quest recurs.
//
//go:generate go tool enumer -type=QuestType -trimprefix=QuestType -transform=snake-upper -json
type QuestType int

const (
	// QuestTypeDaily progress is swept every day.
	QuestTypeDaily QuestType = iota
	// QuestTypeWeekly progress is swept every week.
	QuestTypeWeekly
	// QuestTypeEvent is bound to its active window and never swept.
	QuestTypeEvent
	// QuestTypeSpecial is a one-off quest and never swept.
	QuestTypeSpecial
)

// Recurring reports whether periodic resets clear the quest's progress.
func (q QuestType) Recurring() bool {
	return q == QuestTypeDaily || q == QuestTypeWeekly
}
