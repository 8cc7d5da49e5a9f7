// SPDX-License-Identifier: MIT

// Command dicebalance finds the face numbering of a die that makes its
// corners as evenly weighted as possible.
//
// Usage:
//
//	dicebalance -die d12 [-workers 8] [-corners]
//	dicebalance -file my.die [-cache-dir ~/.cache/dicebalance]
//	dicebalance -all -timeout 10m
//	dicebalance -die d20 -dump yaml
//
// Environment: DICEBALANCE_WORKERS, DICEBALANCE_CACHE_DIR,
// DICEBALANCE_OTEL_ENDPOINT, DICEBALANCE_TIMEOUT. Flags win.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/dicebalance/internal/config"
)

func main() {
	fset := flag.NewFlagSet("dicebalance", flag.ExitOnError)
	klog.InitFlags(fset)
	_ = fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	cfg, err := config.ParseConfig(fset, os.Args[1:])
	if err != nil {
		config.Exitf("dicebalance: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, os.Stdout)
	stop()
	klog.Flush()
	if err != nil {
		config.Exitf("dicebalance: %v", err)
	}
}
