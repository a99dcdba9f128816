package types

// ActionResult is what a recorded action changed for the acting user.
type ActionResult struct {
	Score    *FanScore        `json:"score"`
	Progress []*QuestProgress `json:"progress"`
}

// VoteCastResult is a vote toggle together with the voter's rewards for it.
type VoteCastResult struct {
	Vote     *VoteResult      `json:"vote"`
	Score    *FanScore        `json:"score"`
	Progress []*QuestProgress `json:"progress"`
}
