package main

import (
	"net/http"
	"os"

	"github.com/hack-pad/canvastap/internal/devserver"
	"github.com/kataras/golog"
)

func main() {
	logger := golog.Child("[devserver]")
	cfg, err := devserver.ConfigFromEnv()
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}

	logger.Infof("Serving %s on http://localhost%s", cfg.Dir, cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, devserver.New(cfg, logger)); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
