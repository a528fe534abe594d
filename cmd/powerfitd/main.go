package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/powerfitbr/powerfit/config"
	"github.com/powerfitbr/powerfit/internal/adminapi"
	"github.com/powerfitbr/powerfit/internal/app"
	"github.com/powerfitbr/powerfit/internal/portalapi"
	"github.com/powerfitbr/powerfit/internal/webserver"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	h        = flag.Bool("h", false, "help usage")
	showVer  = flag.Bool("v", false, "show version")
	conffile = flag.String("c", "powerfit.yml", "config yaml file")
	initdb   = flag.Bool("initdb", false, "drop and recreate the database tables, then exit")
)

func printHelp() {
	if *h {
		fmt.Fprintf(os.Stderr, "Usage: powerfitd [flags]\n")
		flag.PrintDefaults()
		os.Exit(0)
	}
}

func main() {
	flag.Parse()
	printHelp()

	if *showVer {
		fmt.Println("powerfitd", config.Version)
		os.Exit(0)
	}

	cfg := config.LoadConfig(*conffile)

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initdb {
		application.InitDb()
		application.SeedData()
		zap.S().Info("database initialized")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ws := webserver.New(cfg)
	adminapi.Register(ws, application)
	portalapi.Register(ws, application)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ws.Start(ctx)
	})

	if err := g.Wait(); err != nil {
		zap.S().Errorf("server stopped: %v", err)
	}
}
