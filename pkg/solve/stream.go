package solve

import "github.com/beltlayout/engine/pkg/model"

// StreamItem is one element of the channel Solve returns: either an
// interleaved progress "attempt" event or the single terminal
// "solution" event that closes the stream. Go has no native sum type,
// so this tagged struct is the idiomatic, JSON-tag-compatible stand-in
// for the external RPC contract named in spec §6.
type StreamItem struct {
	Type     string               `json:"type"`
	Attempt  *model.Attempt       `json:"attempt,omitempty"`
	Solution *model.LayoutSolution `json:"solution,omitempty"`
}

const (
	streamTypeAttempt  = "attempt"
	streamTypeSolution = "solution"
)
