package enum

// TargetType represents the kind of content a vote is cast on.
//
//go:generate go tool enumer -type=TargetType -trimprefix=TargetType -transform=snake-upper -json
type TargetType int

const (
	TargetTypePost TargetType = iota
	TargetTypeComment
)

// VoteType represents the direction of a vote.
//
//go:generate go tool enumer -type=VoteType -trimprefix=VoteType -transform=snake-upper -json
type VoteType int

const (
	VoteTypeUpvote VoteType = iota
	VoteTypeDownvote
)

// VoteOutcome describes what a single cast did to the caller's vote.
//
//go:generate go tool enumer -type=VoteOutcome -trimprefix=VoteOutcome -transform=snake-upper -json
type VoteOutcome int

const (
	// VoteOutcomeCreated means no vote existed and one was created.
	VoteOutcomeCreated VoteOutcome = iota
	// VoteOutcomeRemoved means the same vote was cast again and toggled off.
	VoteOutcomeRemoved
	// VoteOutcomeChanged means the existing vote flipped direction.
	VoteOutcomeChanged
)
