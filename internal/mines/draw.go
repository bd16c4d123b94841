package mines

import (
	"fmt"
	"strings"
)

// Visual enumerates what a renderer should show for a panel.
type Visual int8

const (
	Covered Visual = iota
	Flagged
	Blank
	Number
	Exploded
)

var visualNames = [...]string{
	Covered:  "covered",
	Flagged:  "flagged",
	Blank:    "blank",
	Number:   "number",
	Exploded: "mine",
}

// [Visual] implements [fmt.Stringer]
func (v Visual) String() string {
	if v < 0 || int(v) >= len(visualNames) {
		return fmt.Sprintf("Visual(%d)", int8(v))
	}
	return visualNames[v]
}

// [Visual] implements [encoding.TextMarshaler]
func (v Visual) MarshalText() ([]byte, error) {
	if v < 0 || int(v) >= len(visualNames) {
		return nil, fmt.Errorf("unknown visual %d", int8(v))
	}
	return []byte(visualNames[v]), nil
}

func (v *Visual) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	for i, name := range visualNames {
		if name == s {
			*v = Visual(i)
			return nil
		}
	}
	return fmt.Errorf("unknown visual %q", s)
}

// DrawRequest carries everything a renderer needs to paint one panel.
// Renderers get a copy and have no way back into the board.
type DrawRequest struct {
	Index  int    `json:"index"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Size   int    `json:"size"`
	Visual Visual `json:"visual"`
	Number int    `json:"number,omitempty"`
}

type Drawer interface {
	DrawPanel(DrawRequest)
}

type DrawerFunc func(DrawRequest)

// [DrawerFunc] implements [Drawer]
func (f DrawerFunc) DrawPanel(r DrawRequest) {
	f(r)
}

// Discard drops every draw request.
var Discard Drawer = DrawerFunc(func(DrawRequest) {})

// Recorder collects draw requests until drained.
type Recorder struct {
	requests []DrawRequest
}

// [*Recorder] implements [Drawer]
func (r *Recorder) DrawPanel(req DrawRequest) {
	r.requests = append(r.requests, req)
}

func (r *Recorder) Len() int {
	return len(r.requests)
}

// Drain returns the recorded requests in emission order and forgets them.
func (r *Recorder) Drain() []DrawRequest {
	requests := r.requests
	r.requests = nil
	return requests
}
