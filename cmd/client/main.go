package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/crmdash/internal/client/cli"
	"github.com/dmitrijs2005/crmdash/internal/client/config"
)

func main() {

	cfg := config.LoadConfig(os.Args[1:])
	app := cli.NewApp(cfg)

	if err := app.Run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

}
