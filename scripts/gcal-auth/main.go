// scripts/gcal-auth/main.go
//
// Authorizes calendar sync for OAuth desktop credentials and writes the token
// the API reads from google_calendar.token_path. Service Account keys do not
// need this step.
//
// Usage:
//
//	go run ./scripts/gcal-auth [credentials.json] [token.json]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"syllabus-tracker/pkg/log"
)

func main() {
	ctx := context.Background()
	l := log.Init(log.ZapConfig{Level: "info", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole})

	credsPath, tokenPath := "google-credentials.json", "token.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		tokenPath = os.Args[2]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		l.Fatalf(ctx, "Failed to read credentials file %q: %v", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarEventsScope)
	if err != nil {
		l.Fatalf(ctx, "%q is not an OAuth desktop credentials file: %v", credsPath, err)
	}

	authURL := config.AuthCodeURL("syllabus-tracker", oauth2.AccessTypeOffline)
	fmt.Println("1. Open this URL and sign in with the Google account that owns the calendar:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("2. Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		l.Fatalf(ctx, "Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(ctx, code)
	if err != nil {
		l.Fatalf(ctx, "Failed to exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		l.Fatalf(ctx, "Failed to create %s: %v", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		l.Fatalf(ctx, "Failed to write %s: %v", tokenPath, err)
	}

	l.Infof(ctx, "Token saved to %s. Restart the API to enable calendar sync.", tokenPath)
}
