package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"linkedin-job-screener/internal/secrets"
)

// Stores the LinkedIn password in the OS keychain so it does not have to
// live in .env. The password is read from stdin.
func main() {
	email := flag.String("email", os.Getenv("LINKEDIN_EMAIL"), "LinkedIn account email")
	del := flag.Bool("delete", false, "remove the stored password")
	flag.Parse()

	if strings.TrimSpace(*email) == "" {
		log.Fatal("❌ -email (or LINKEDIN_EMAIL) is required")
	}

	if *del {
		if err := secrets.DeleteLinkedInPassword(*email); err != nil {
			log.Fatalf("❌ %v", err)
		}
		fmt.Println("🗑️ Password removed from keychain")
		return
	}

	fmt.Print("Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		log.Fatalf("❌ read password: %v", err)
	}
	if err := secrets.SetLinkedInPassword(*email, strings.TrimRight(line, "\r\n")); err != nil {
		log.Fatalf("❌ %v", err)
	}
	fmt.Printf("🔐 Password stored in keychain for %s\n", *email)
}
