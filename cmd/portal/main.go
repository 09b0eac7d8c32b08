package main

import (
	"context"
	"log"
	"os"

	"github.com/dkamau/studentportal/internal/buildinfo"
	"github.com/dkamau/studentportal/internal/cli"
	"github.com/dkamau/studentportal/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
