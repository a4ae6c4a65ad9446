// Command housepricing-query searches quarterly house prices from the terminal,
// either straight against the statistics API or through a running housepricing-api
package main

import (
	"fmt"
	"os"

	"housepricing/internal/platform/config"
	"housepricing/internal/platform/logger"
)

func main() {
	logger.Init(logger.FromEnv(logger.Options{
		Level:   "warn",
		Service: "housepricing-query",
		Writer:  os.Stderr,
	}))
	config.LoadDotenv()

	if err := newRootCmd(config.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
