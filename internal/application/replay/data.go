package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	D bool `json:"d,omitempty"` // Down
	A bool `json:"a,omitempty"` // Action (just pressed)
	P bool `json:"p,omitempty"` // Pause (just pressed)
}

// ReplayData contains all data needed to replay a session.
// The session is deterministic, so the start map and inputs suffice.
type ReplayData struct {
	Version   string       `json:"version"`
	Map       string       `json:"map"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
