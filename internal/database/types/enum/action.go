package enum

// ActionType represents a qualifying user action that feeds the score ledger and quests.
//
//go:generate go tool enumer -type=ActionType -trimprefix=ActionType -transform=snake-upper -json
type ActionType int

const (
	// ActionTypePostCreated is emitted when a user authors a post.
	ActionTypePostCreated ActionType = iota
	// ActionTypeCommentCreated is emitted when a user authors a comment.
	ActionTypeCommentCreated
	// ActionTypeVoteCast is emitted when a user casts a new vote.
	ActionTypeVoteCast
	// ActionTypeQuestCompleted is used for quest rewards and cannot be tracked by quests.
	ActionTypeQuestCompleted
)

// Category returns the score bucket the action feeds.
func (a ActionType) Category() ScoreCategory {
	switch a {
	case ActionTypePostCreated:
		return ScoreCategoryPost
	case ActionTypeCommentCreated:
		return ScoreCategoryComment
	case ActionTypeVoteCast:
		return ScoreCategoryVote
	case ActionTypeQuestCompleted:
		return ScoreCategoryQuest
	}
	panic("unhandled action type: " + a.String())
}

// Trackable reports whether quests may use the action as their trigger.
func (a ActionType) Trackable() bool {
	return a.IsAActionType() && a != ActionTypeQuestCompleted
}

// ScoreCategory is one of the per-action subtotals of a fan score.
//
//go:generate go tool enumer -type=ScoreCategory -trimprefix=ScoreCategory -transform=snake-upper -json
type ScoreCategory int

const (
	ScoreCategoryPost ScoreCategory = iota
	ScoreCategoryComment
	ScoreCategoryVote
	ScoreCategoryQuest
)

// Column returns the fan_scores column holding the category subtotal.
func (c ScoreCategory) Column() string {
	switch c {
	case ScoreCategoryPost:
		return "post_score"
	case ScoreCategoryComment:
		return "comment_score"
	case ScoreCategoryVote:
		return "vote_score"
	case ScoreCategoryQuest:
		return "quest_score"
	}
	panic("unhandled score category: " + c.String())
}
