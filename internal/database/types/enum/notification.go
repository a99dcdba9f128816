package enum

// NotificationKind identifies a notification emitted by the engine.
//
//go:generate go tool enumer -type=NotificationKind -trimprefix=NotificationKind -transform=snake-upper -json
type NotificationKind int

const (
	// NotificationKindVoteMilestone is sent when a target's upvotes reach a multiple of ten.
	NotificationKindVoteMilestone NotificationKind = iota
)
