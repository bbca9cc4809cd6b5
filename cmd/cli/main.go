package main

import (
	"context"
	"log"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/cli"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.Bootstrap(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
