package main

import (
	"time"

	"github.com/andareed/siftly-tuner/live"
	"github.com/andareed/siftly-tuner/schedule"
)

// viewMode is the presentation mode. Track follows the receiver, Send lets the
// user pick a row and tune to it.
type viewMode int

const (
	viewTrack viewMode = iota
	viewSend
)

func (v viewMode) String() string {
	if v == viewSend {
		return "SEND"
	}
	return "TRACK"
}

type dataState struct {
	repo *schedule.Repository
	view viewMode

	// render is the latest refresh-cycle output; renderVersion is the
	// repository version it was built against.
	render        live.Render
	renderVersion uint64
	hasRender     bool

	// instant overrides the clock for activity windows when non-zero.
	instant time.Time
}
