// Command fxcontrol serves the compressor control endpoints while pacing a
// generated stereo tone through an effect chain in real time. The chain
// processes the left channel; the right channel is linked to its compressor.
//
// Usage:
//
//	fxcontrol [flags]
//
// Without -chain the chain is a single soft-knee compressor. The first
// compressor node in the chain is exposed as RatioControl, Threshold,
// AttackTime and ReleaseTime on /service; /status reports whether it is
// currently reducing gain.
//
// Examples:
//
//	fxcontrol -addr :8080
//	fxcontrol -chain comp.json -tone 220 -swell 3s
//	curl -d '{"Threshold":"30"}' localhost:8080/service
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/dsp/effectchain"
	"github.com/cwbudde/algo-fx/dsp/effects/dynamics"
	"github.com/cwbudde/algo-fx/internal/control"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	defaultGraph    = `{"nodes":[{"id":"comp","type":"compressor"}]}`
	shutdownTimeout = 5 * time.Second
)

type options struct {
	addr       string
	chainPath  string
	toneHz     float64
	loud       int
	quiet      int
	swell      time.Duration
	sampleRate float64
	blockSize  int
}

func main() {
	var opts options

	flag.StringVar(&opts.addr, "addr", ":8080", "HTTP listen address")
	flag.StringVar(&opts.chainPath, "chain", "", "chain document (JSON); default is a single compressor")
	flag.Float64Var(&opts.toneHz, "tone", 440, "test tone frequency in Hz")
	flag.IntVar(&opts.loud, "loud", 30000, "loud tone peak in sample units")
	flag.IntVar(&opts.quiet, "quiet", 3000, "quiet tone peak in sample units")
	flag.DurationVar(&opts.swell, "swell", 2*time.Second, "time between loud and quiet sections")
	flag.Float64Var(&opts.sampleRate, "rate", core.DefaultSampleRate, "sample rate in Hz")
	flag.IntVar(&opts.blockSize, "block", 512, "frames per block")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fxcontrol [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Serves compressor controls over HTTP while running a test tone through the chain.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		logrus.WithError(err).Fatal("fxcontrol stopped")
	}
}

func run(ctx context.Context, opts options) error {
	graph := defaultGraph
	if opts.chainPath != "" {
		data, err := os.ReadFile(opts.chainPath)
		if err != nil {
			return fmt.Errorf("read chain document: %w", err)
		}

		graph = string(data)
	}

	cfg := core.ApplyProcessorOptions(core.WithSampleRate(opts.sampleRate), core.WithBlockSize(opts.blockSize))

	d, srv, err := setup(graph, opts, cfg)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              opts.addr,
		Handler:           srv,
		ReadHeaderTimeout: 5 * time.Second,
	}

	interval := blockInterval(cfg)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logrus.WithField("addr", opts.addr).Info("control server listening")

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		logrus.WithFields(logrus.Fields{
			"rate":     cfg.SampleRate,
			"block":    cfg.BlockSize,
			"interval": interval,
			"tone":     opts.toneHz,
		}).Info("audio driver started")

		return d.run(ctx, interval)
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logrus.Info("shutting down")

		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// setup builds the linked chain, the controller for its first compressor
// and the HTTP handler.
func setup(graph string, opts options, cfg core.ProcessorConfig) (*driver, *control.Server, error) {
	link := dynamics.NewStereoLink()
	registry := effectchain.DefaultRegistry(effectchain.WithStereoLink(link))

	chain := effectchain.New(effectchain.Context{SampleRate: cfg.SampleRate}, registry)
	if err := chain.LoadGraph(graph); err != nil {
		return nil, nil, err
	}

	node, err := compressorNode(chain)
	if err != nil {
		return nil, nil, err
	}

	set, err := control.NewSet(control.CompressorParameters(node)...)
	if err != nil {
		return nil, nil, err
	}

	ctrl := control.NewController(set)

	swellFrames := int(opts.swell.Seconds() * cfg.SampleRate)
	tone := newSwellTone(opts.toneHz, cfg.SampleRate, core.Sample(core.ClampInt(opts.loud, 0, int(core.MaxSample))),
		core.Sample(core.ClampInt(opts.quiet, 0, int(core.MaxSample))), swellFrames)

	d := newDriver(ctrl, chain, link, tone, cfg.BlockSize)

	return d, control.NewServer(ctrl, control.WithStatus(link.Engaged)), nil
}

// blockInterval is the wall-clock duration of one block, at least 1 ms.
func blockInterval(cfg core.ProcessorConfig) time.Duration {
	interval := time.Duration(float64(cfg.BlockSize) / cfg.SampleRate * float64(time.Second))

	return max(interval, time.Millisecond)
}

// compressorNode returns the id of the first compressor node.
func compressorNode(c *effectchain.Chain) (string, error) {
	for _, id := range c.IDs() {
		p, err := c.Params(id)
		if err != nil {
			return "", err
		}

		if p.Type == effectchain.TypeCompressor || p.Type == effectchain.TypeLogCompressor {
			return id, nil
		}
	}

	return "", errors.New("chain has no compressor node")
}
