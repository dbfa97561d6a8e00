package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/notekeeper/internal/buildinfo"
	"github.com/dmitrijs2005/notekeeper/internal/devserver"
	"github.com/dmitrijs2005/notekeeper/internal/devserver/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app := devserver.NewApp(cfg, nil, nil, nil)
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}

}
