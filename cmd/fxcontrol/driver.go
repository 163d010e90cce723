package main

import (
	"context"
	"time"

	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/dsp/effectchain"
	"github.com/cwbudde/algo-fx/dsp/effects/dynamics"
	"github.com/cwbudde/algo-fx/internal/control"
	"github.com/cwbudde/algo-fx/measure/analysis"
	"github.com/sirupsen/logrus"
)

// driver stands in for an audio callback: it pulls one block of the tone
// through the chain per tick and applies control updates between blocks.
//
// The chain runs on the left channel and acts as the detector. The right
// channel carries the dry tone 6 dB down and follows the detector through the
// stereo link, so it is scaled by the left compressor's gain rather than by
// its own level.
type driver struct {
	ctrl  *control.Controller
	chain *effectchain.Chain
	link  *dynamics.StereoLink
	tone  *swellTone

	block       []core.Sample
	engaged     bool
	transitions int
}

func newDriver(ctrl *control.Controller, chain *effectchain.Chain, link *dynamics.StereoLink, tone *swellTone, blockSize int) *driver {
	return &driver{
		ctrl:  ctrl,
		chain: chain,
		link:  link,
		tone:  tone,
		block: make([]core.Sample, 2*blockSize),
	}
}

// step drains pending control updates and renders one interleaved block.
func (d *driver) step() {
	if err := d.ctrl.Drain(d.chain); err != nil {
		logrus.WithError(err).Warn("control update failed")
	}

	for i := 0; i < len(d.block); i += 2 {
		s := d.tone.next()

		d.link.SetPair(s, s/2)
		d.block[i] = d.chain.Process(s)
		_, d.block[i+1] = d.link.Pair()
	}

	if engaged := d.link.Engaged(); engaged != d.engaged {
		d.engaged = engaged
		d.transitions++

		stats := analysis.Levels(d.block)
		logrus.WithFields(logrus.Fields{
			"gainDb":  core.LinearToDB(d.link.Gain()),
			"peakDb":  stats.PeakDB,
			"engaged": engaged,
		}).Info("compressor state changed")
	}
}

// run steps once per interval until ctx is cancelled.
func (d *driver) run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			d.step()
		}
	}
}
