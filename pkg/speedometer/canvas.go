package speedometer

import "image/color"

// Paint describes how a layer is drawn.
type Paint struct {
	Color       color.RGBA
	StrokeWidth float64
	TextSize    float64
	Glow        float64
}

// Arc is a clockwise sweep in degrees, 0 at 3 o'clock.
type Arc struct {
	StartDeg, SweepDeg float64
}

// Canvas is the drawing surface a gauge renders onto. Implementations must
// tolerate empty arc lists and zero sized ovals.
type Canvas interface {
	DrawArcs(oval Rect, arcs []Arc, p Paint)
	DrawTextOnPath(text string, path Path, hOffset, vOffset float64, p Paint)
}

type CommandKind int

const (
	CmdArcs CommandKind = iota
	CmdText
)

func (k CommandKind) String() string {
	switch k {
	case CmdArcs:
		return "arcs"
	case CmdText:
		return "text"
	default:
		return "unknown"
	}
}

// Command is one recorded draw call.
type Command struct {
	Kind    CommandKind
	Oval    Rect
	Arcs    []Arc
	Text    string
	Path    Path
	HOffset float64
	VOffset float64
	Paint   Paint
}

// Recorder is a Canvas that keeps every draw call as a display list.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) DrawArcs(oval Rect, arcs []Arc, p Paint) {
	cp := make([]Arc, len(arcs))
	copy(cp, arcs)
	r.Commands = append(r.Commands, Command{Kind: CmdArcs, Oval: oval, Arcs: cp, Paint: p})
}

func (r *Recorder) DrawTextOnPath(text string, path Path, hOffset, vOffset float64, p Paint) {
	r.Commands = append(r.Commands, Command{Kind: CmdText, Text: text, Path: path, HOffset: hOffset, VOffset: vOffset, Paint: p})
}

func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Texts returns the recorded text commands in draw order.
func (r *Recorder) Texts() []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Kind == CmdText {
			out = append(out, c)
		}
	}
	return out
}
