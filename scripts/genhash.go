package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Hashes passwords given on the command line so admin accounts can be
// seeded directly in SQL. Usage: go run scripts/genhash.go <password>...
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password>...")
		os.Exit(1)
	}

	for _, pass := range os.Args[1:] {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), 10)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", pass, string(hash))
	}
}
