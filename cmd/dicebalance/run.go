// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/dicebalance/builder"
	"github.com/katalvlaran/dicebalance/descriptor"
	"github.com/katalvlaran/dicebalance/die"
	"github.com/katalvlaran/dicebalance/internal/config"
	"github.com/katalvlaran/dicebalance/internal/telemetry"
	"github.com/katalvlaran/dicebalance/optimize"
	"github.com/katalvlaran/dicebalance/store"
)

const (
	serviceName                = "dicebalance"
	defaultOTelShutdownTimeout = 5 * time.Second
)

// run balances every die selected by cfg and writes a report per die to w.
func run(ctx context.Context, cfg config.Config, w io.Writer) (err error) {
	shutdown, err := telemetry.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return errors.Wrap(err, "telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultOTelShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			klog.Warningf("%s otel shutdown: %v", serviceName, err)
		}
	}()

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	descs, err := targets(cfg)
	if err != nil {
		return err
	}

	if cfg.Dump != "" {
		for _, desc := range descs {
			out, err := descriptor.Encode(descriptor.Format(cfg.Dump), desc)
			if err != nil {
				return err
			}
			if _, err := w.Write(out); err != nil {
				return err
			}
		}

		return nil
	}

	var cache *store.Store
	if cfg.UseCache() {
		if cache, err = store.Open(cfg.CacheDir); err != nil {
			return err
		}
		defer func() {
			if cerr := cache.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
	}

	p := message.NewPrinter(language.English)
	for _, desc := range descs {
		if err := balance(ctx, cfg, cache, desc, p, w); err != nil {
			return errors.Wrapf(err, "balance %s", desc.Name)
		}
	}

	return nil
}

// targets resolves the descriptors selected by -die, -file or -all.
func targets(cfg config.Config) ([]die.Descriptor, error) {
	switch {
	case cfg.File != "":
		desc, err := descriptor.Load(cfg.File)
		if err != nil {
			return nil, err
		}

		return []die.Descriptor{desc}, nil
	case cfg.Die != "":
		kind, err := builder.ParseKind(cfg.Die)
		if err != nil {
			return nil, err
		}
		desc, err := builder.Standard(kind)
		if err != nil {
			return nil, err
		}

		return []die.Descriptor{desc}, nil
	}

	kinds := builder.All()
	descs := make([]die.Descriptor, 0, len(kinds))
	for _, kind := range kinds {
		desc, err := builder.Standard(kind)
		if err != nil {
			return nil, err
		}
		descs = append(descs, desc)
	}

	return descs, nil
}

// balance optimizes one die, consulting the cache first, and reports it.
func balance(
	ctx context.Context,
	cfg config.Config,
	cache *store.Store,
	desc die.Descriptor,
	p *message.Printer,
	w io.Writer,
) error {
	d, err := die.New(desc, die.WithContext(ctx))
	if err != nil {
		return err
	}

	var (
		res    optimize.Result
		cached bool
	)
	if cache != nil {
		rec, ok, err := cache.Get(desc)
		if err != nil {
			return err
		}
		if ok {
			res, cached = rec.Result(), true
			if err := d.Assign(res.Weights); err != nil {
				return err
			}
			klog.V(1).Infof("%s: cache hit %s", desc.Name, rec.ID)
		}
	}

	if !cached {
		res, err = optimize.Optimize(ctx, d,
			optimize.WithWorkers(cfg.Workers),
			optimize.WithProgress(cfg.Progress),
		)
		if err != nil {
			return err
		}
		if cache != nil {
			if _, err := cache.Put(desc, res); err != nil {
				return err
			}
		}
	}

	return report(p, w, d, res, cached, cfg.ListCorners)
}

// report prints the optimum for d.
func report(p *message.Printer, w io.Writer, d *die.Die, res optimize.Result, cached, corners bool) error {
	source := "searched"
	if cached {
		source = "cached"
	}
	if _, err := p.Fprintf(w, "%s: %d faces, %d corners, %d candidates %s in %v\n",
		d.Name(), d.FaceCount(), len(d.Corners()), res.Candidates, source, res.Elapsed.Round(time.Microsecond)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  spread %.6f\n  faces  %s\n", res.Spread, d.FacesString()); err != nil {
		return err
	}
	if corners {
		if _, err := fmt.Fprintf(w, "  corners\n%s\n", d.CornersString()); err != nil {
			return err
		}
	}

	return nil
}
