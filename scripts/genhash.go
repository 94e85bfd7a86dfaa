package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Generates bcrypt hashes for seeding test accounts:
//
//	go run scripts/genhash.go <password> [password...]
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: genhash <password> [password...]")
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
