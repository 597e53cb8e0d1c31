package pipeline

// Direction tells whether a trace step was recorded while building
// the wire representation or while recovering the message.
type Direction int

const (
	Encapsulation Direction = iota
	Decapsulation
)

func (d Direction) String() string {
	if d == Encapsulation {
		return "encapsulation"
	}
	return "decapsulation"
}

// Layer names as they appear in trace steps, in encapsulation order.
const (
	LayerApplication  = "application"
	LayerPresentation = "presentation"
	LayerSession      = "session"
	LayerTransport    = "transport"
	LayerNetwork      = "network"
	LayerDataLink     = "datalink"
	LayerPhysical     = "physical"
)

// Step records the envelope produced at one layer boundary. Envelope
// holds the layer's concrete output type (appframe.Envelope,
// obfs.Envelope, session.Envelope, segment.Set, netw.PacketSet,
// link.FrameSet or phys.BinarySet).
type Step struct {
	Layer     string
	Direction Direction
	Envelope  any
}

// Observer is invoked after each layer transition. It sees every step
// in order and must not retain or mutate the envelope.
type Observer func(step Step)

// trace accumulates steps during one pipeline call.
type trace struct {
	steps    []Step
	observer Observer
}

func (t *trace) record(layer string, dir Direction, env any) {
	step := Step{Layer: layer, Direction: dir, Envelope: env}
	t.steps = append(t.steps, step)
	if t.observer != nil {
		t.observer(step)
	}
}
