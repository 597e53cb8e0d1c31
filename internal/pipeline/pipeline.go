// Package pipeline composes the seven layer transforms into the
// bidirectional encapsulation pipeline. Layer order is a fixed total
// order decided here; configuration happens at construction and the
// pipeline holds no mutable state between calls.
package pipeline

import (
	"fmt"

	"stratum/internal/appframe"
	"stratum/internal/conf"
	"stratum/internal/flog"
	"stratum/internal/link"
	"stratum/internal/netw"
	"stratum/internal/obfs"
	"stratum/internal/phys"
	"stratum/internal/protocol"
	"stratum/internal/segment"
	"stratum/internal/session"
)

// Pipeline drives a message through
// application → presentation → session → transport → network →
// datalink → physical, and the exact reverse.
type Pipeline struct {
	app      *appframe.Framer
	pres     *obfs.Layer
	sess     *session.Tagger
	trans    *segment.Segmenter
	netw     *netw.Addresser
	link     *link.Addresser
	phys     *phys.Codec
	observer Observer
}

// Option configures a Pipeline at construction.
type Option func(*Pipeline)

// WithObserver registers a callback invoked after each layer
// transition, for both directions.
func WithObserver(fn Observer) Option {
	return func(p *Pipeline) { p.observer = fn }
}

// New builds a pipeline from validated configuration.
func New(cfg *conf.Conf, opts ...Option) (*Pipeline, error) {
	framer := appframe.New(cfg.App.Host, cfg.App.Path)
	pres, err := obfs.NewLayer(cfg.Cipher.Codec, cfg.Cipher.Mode, cfg.Cipher.KeyByte, framer)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		app:  framer,
		pres: pres,
		sess: session.New(cfg.Session.TokenLength),
		trans: segment.New(
			cfg.Transport.ChunkSize,
			uint16(cfg.Transport.SrcPort),
			uint16(cfg.Transport.DstPort),
			cfg.Cipher.Codec,
			cfg.Cipher.Mode,
		),
		netw: netw.New(cfg.Network.SrcIP, cfg.Network.DstIP, uint8(cfg.Network.TTL)),
		link: link.New(cfg.Link.SrcMAC, cfg.Link.DstMAC),
		phys: phys.New(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Wire is the final wire-ready representation together with the
// recorded layer trace.
type Wire struct {
	Binary    phys.BinarySet
	SessionID string

	steps []Step
}

// Trace returns the boundary envelopes recorded during encapsulation.
// It is a pure projection of recorded state; nothing is re-executed.
func (w *Wire) Trace() []Step {
	out := make([]Step, len(w.steps))
	copy(out, w.steps)
	return out
}

// Result carries the recovered message, the integrity warnings
// collected during reassembly and the decapsulation trace.
type Result struct {
	Message  string
	Warnings []protocol.IntegrityWarning

	steps []Step
}

// Trace returns the boundary envelopes recorded during decapsulation.
func (r *Result) Trace() []Step {
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// Encapsulate threads message through all layers top to bottom and
// returns the wire representation.
func (p *Pipeline) Encapsulate(message string) (*Wire, error) {
	t := &trace{observer: p.observer}

	app := p.app.Encapsulate(message)
	t.record(LayerApplication, Encapsulation, app)

	pres, err := p.pres.Encapsulate(app)
	if err != nil {
		return nil, fmt.Errorf("presentation layer: %w", err)
	}
	t.record(LayerPresentation, Encapsulation, pres)

	sess, err := p.sess.Encapsulate(pres)
	if err != nil {
		return nil, fmt.Errorf("session layer: %w", err)
	}
	t.record(LayerSession, Encapsulation, sess)

	segs := p.trans.Encapsulate(sess)
	t.record(LayerTransport, Encapsulation, segs)

	pkts := p.netw.Encapsulate(segs)
	t.record(LayerNetwork, Encapsulation, pkts)

	frms := p.link.Encapsulate(pkts)
	t.record(LayerDataLink, Encapsulation, frms)

	bin := p.phys.Encapsulate(frms)
	t.record(LayerPhysical, Encapsulation, bin)

	flog.Debugf("encapsulated %d byte message as %d frames (%d bits), session %s",
		len(message), len(bin.Frames), bin.TotalBits(), sess.ID)

	return &Wire{Binary: bin, SessionID: sess.ID, steps: t.steps}, nil
}

// Decapsulate threads the wire representation through all layers
// bottom to top and returns the recovered message. Integrity warnings
// are collected into the result; decode and protocol failures abort.
func (p *Pipeline) Decapsulate(w *Wire) (*Result, error) {
	t := &trace{observer: p.observer}

	frms, err := p.phys.Decapsulate(w.Binary)
	if err != nil {
		return nil, fmt.Errorf("physical layer: %w", err)
	}
	t.record(LayerPhysical, Decapsulation, frms)

	pkts, err := p.link.Decapsulate(frms)
	if err != nil {
		return nil, fmt.Errorf("datalink layer: %w", err)
	}
	t.record(LayerDataLink, Decapsulation, pkts)

	segs, err := p.netw.Decapsulate(pkts)
	if err != nil {
		return nil, fmt.Errorf("network layer: %w", err)
	}
	t.record(LayerNetwork, Decapsulation, segs)

	sess, warnings := p.trans.Decapsulate(segs)
	for _, warn := range warnings {
		flog.Warnf("%s", warn)
	}
	t.record(LayerTransport, Decapsulation, sess)

	inner := p.sess.Decapsulate(sess)
	t.record(LayerSession, Decapsulation, inner)

	app, err := p.pres.Decapsulate(inner)
	if err != nil {
		return nil, fmt.Errorf("presentation layer: %w", err)
	}
	t.record(LayerPresentation, Decapsulation, app)

	message := p.app.Decapsulate(app)
	t.record(LayerApplication, Decapsulation, message)

	return &Result{Message: message, Warnings: warnings, steps: t.steps}, nil
}

// RoundTrip encapsulates message and immediately decapsulates the
// result, returning both representations.
func (p *Pipeline) RoundTrip(message string) (*Wire, *Result, error) {
	w, err := p.Encapsulate(message)
	if err != nil {
		return nil, nil, err
	}
	r, err := p.Decapsulate(w)
	if err != nil {
		return w, nil, err
	}
	return w, r, nil
}
