package main

import (
	"github.com/corray333/order-capture/internal/app"
	"github.com/corray333/order-capture/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
