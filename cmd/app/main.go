package main

import (
	"github.com/humanbelnik/reelmatch/core/internal/app"
	"github.com/humanbelnik/reelmatch/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
