//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of gridlines requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/gridlines` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For headless retention statistics use `go run ./cmd/seed-sweep`.")
	os.Exit(2)
}
