//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The room viewer requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/roomviz` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a console run use `go run ./cmd/vacuum`.")
	os.Exit(2)
}
