package main

import (
	"flag"
	"fmt"
	"log"

	"linkedin-job-screener/internal/config"
)

func mask(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "..."
}

func main() {
	path := flag.String("config", config.DefaultPath, "path to the YAML config")
	flag.Parse()

	fmt.Println("🔧 Testing config loading...")
	cfg, err := config.Load(*path)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Keywords: %v\n", cfg.Search.Keywords)
	fmt.Printf("   Location: %s (max %d jobs per search)\n", cfg.Search.Location, cfg.Search.MaxJobsPerSearch)
	fmt.Printf("   Target terms: %d, avoid terms: %d, threshold: %.1f\n",
		len(cfg.Filter.Target), len(cfg.Filter.Avoid), cfg.Filter.Threshold)
	fmt.Printf("   CSV: %s (all jobs: %v)\n", cfg.Output.CSVFile, cfg.Output.SaveAllJobs)
	fmt.Printf("   Cookies: %s\n", cfg.CookiesFile())
	if cfg.LinkedInEmail != "" {
		fmt.Printf("   LinkedIn account: %s\n", cfg.LinkedInEmail)
	}
	if cfg.TelegramEnabled() {
		fmt.Printf("   Telegram Token: %s\n", mask(cfg.Telegram.Token))
		fmt.Printf("   Telegram Chat ID: %d\n", cfg.Telegram.ChatID)
	}
}
