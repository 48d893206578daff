package main

import (
	"context"
	"fmt"
	"os"

	"finance-dashboard/cmd/detect"
	"finance-dashboard/cmd/link"
	"finance-dashboard/cmd/migrate"
	"finance-dashboard/cmd/root"
	"finance-dashboard/cmd/serve"
	"finance-dashboard/cmd/token"

	"github.com/joho/godotenv"
)

func main() {
	loadEnvSilently()

	root.Init()
	root.Cmd.AddCommand(serve.Cmd)
	root.Cmd.AddCommand(migrate.Cmd)
	root.Cmd.AddCommand(detect.Cmd)
	root.Cmd.AddCommand(token.Cmd)
	root.Cmd.AddCommand(link.Cmd)

	if err := root.Cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// loadEnvSilently loads .env when present. A missing file is not an error.
func loadEnvSilently() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: failed to load .env: %v\n", err)
	}
}
