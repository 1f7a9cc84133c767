//go:build !ebiten

package main

import "log"

func main() {
	log.SetFlags(0)
	log.Fatal("ca: this binary was built without the viewer; rebuild with `go build -tags ebiten ./cmd/ca`, or run ./cmd/cavegen for PNG/ASCII output")
}
