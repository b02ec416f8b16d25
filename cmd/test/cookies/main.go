package main

import (
	"flag"
	"fmt"
	"log"

	"linkedin-job-screener/internal/browser"
	"linkedin-job-screener/internal/config"
)

func main() {
	path := flag.String("config", config.DefaultPath, "path to the YAML config")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	fmt.Println("🍪 Testing cookie loading...")
	cookies, err := browser.LoadCookies(cfg.CookiesFile())
	if err != nil {
		log.Fatalf("Failed to load cookies: %v", err)
	}

	fmt.Printf("✅ Loaded %d unexpired cookies from %s\n", len(cookies), cfg.CookiesFile())
	fmt.Printf("   LinkedIn session (li_at): %v\n", browser.HasSessionCookie(cookies))
}
