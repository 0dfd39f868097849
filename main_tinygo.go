//go:build tinygo

package main

import (
	"spincube/app"
	"spincube/hal"
)

func main() {
	app.Run(hal.New(), app.BoardConfig())
}
