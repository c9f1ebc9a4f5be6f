package model

// InputState is the frame's control snapshot, polled once per tick.
type InputState struct {
	Forward    bool
	Backward   bool
	Left       bool
	Right      bool
	Jump       bool
	FireHeld   bool
	UseDash    bool
	UseUpdraft bool
}
