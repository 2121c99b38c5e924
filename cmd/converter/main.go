package main

import (
	"context"
	"log"
	"os"

	"github.com/langowen/converter/deploy/config"
	converterApp "github.com/langowen/converter/internal/converter/app"
)

func main() {
	cfg := config.NewConfig()

	app := converterApp.NewConverterApp(cfg, os.Stdin, os.Stdout)

	if err := app.Start(context.Background()); err != nil {
		log.Fatalln(err)
	}
}
