package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/harrylevesque/qrverify/internal/files"
)

// Usage: genmasterkey [path]. The key signs and encrypts session cookies.
func main() {
	keyFile := "master.key"
	if len(os.Args) > 1 {
		keyFile = os.Args[1]
	}
	if _, err := files.WriteMasterKey(keyFile); err != nil {
		if errors.Is(err, files.ErrKeyExists) {
			fmt.Fprintf(os.Stderr, "Error: %s already exists. Refusing to overwrite.\n", keyFile)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Printf("Master key written to %s\n", keyFile)
}
