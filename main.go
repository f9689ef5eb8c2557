package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"hevy-insights/internal/config"
	"hevy-insights/internal/hevy"
	"hevy-insights/internal/repo"
	"hevy-insights/internal/service"
	"hevy-insights/internal/store"
	"hevy-insights/internal/tui"
)

func main() {
	importPath := flag.String("import", "", "import workouts from a JSON export and exit")
	exportPath := flag.String("export", "", "export the stored workouts to a JSON file and exit")
	offline := flag.Bool("offline", false, "run from the stored snapshot without contacting Hevy")
	flag.Parse()

	if err := run(*importPath, *exportPath, *offline); err != nil {
		log.Fatal(err)
	}
}

func run(importPath, exportPath string, offline bool) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating example config...")
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("\nPlease edit the config file at:\n  %s/config.json\n\n", configDir)
		fmt.Println("Set email_or_username to your Hevy account.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	// Open database
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	// One-shot modes that never touch the API
	if importPath != "" {
		return runImport(db, importPath)
	}
	if exportPath != "" {
		return runExport(ctx, db, exportPath)
	}
	if offline {
		return runOffline(db, cfg)
	}

	// Authenticate against the Hevy API
	client, auth, err := authenticate(ctx, db, cfg)
	if err != nil {
		return fmt.Errorf("authentication: %w", err)
	}

	username := auth.Username
	if username == "" {
		username = cfg.Hevy.EmailOrUsername
	}

	repository := repo.New(client, username)
	if records, fetchedAt, err := db.LoadSnapshot(); err == nil {
		repository.Seed(records, fetchedAt)
	}

	syncSvc := service.NewSyncService(repository, db)
	querySvc := service.NewQueryService(repository)

	// Launch TUI
	app := tui.NewApp(querySvc, syncSvc, cfg.Display)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// authenticate returns a client carrying a valid auth token, logging
// in (and storing the session) when no stored token works.
func authenticate(ctx context.Context, db *store.Store, cfg *config.Config) (*hevy.Client, *store.Auth, error) {
	baseURL := cfg.Hevy.BaseURL
	if baseURL == "" {
		baseURL = hevy.DefaultBaseURL
	}
	apiKey := cfg.Hevy.APIKey
	if apiKey == "" {
		apiKey = hevy.DefaultAPIKey
	}

	auth, err := db.GetAuth()
	if err == nil {
		client := hevy.NewClient(baseURL, apiKey, auth.AuthToken)
		valid, err := client.ValidateToken(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("validating stored token: %w", err)
		}
		if valid {
			return client, auth, nil
		}
		fmt.Println("Stored session has expired. Logging in again...")
	} else if !errors.Is(err, store.ErrNoAuth) {
		return nil, nil, fmt.Errorf("checking stored auth: %w", err)
	}

	client := hevy.NewClient(baseURL, apiKey, "")
	session, err := login(ctx, client, cfg.Hevy.EmailOrUsername)
	if err != nil {
		return nil, nil, err
	}

	auth = &store.Auth{
		AuthToken: session.AuthToken,
		UserID:    session.UserID,
		Username:  session.Username,
		Email:     session.Email,
	}
	if err := db.SaveAuth(auth); err != nil {
		return nil, nil, fmt.Errorf("saving session: %w", err)
	}

	fmt.Println("Logged in successfully.")
	return client, auth, nil
}

func login(ctx context.Context, client *hevy.Client, emailOrUsername string) (*hevy.Session, error) {
	fmt.Printf("Logging in as %s\n", emailOrUsername)
	fmt.Print("Password: ")

	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}
	password = strings.TrimRight(password, "\r\n")

	session, err := client.Login(ctx, emailOrUsername, password)
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}
	return session, nil
}

func runImport(db *store.Store, path string) error {
	repository := repo.NewImported(nil)
	syncSvc := service.NewSyncService(repository, db)

	count, err := syncSvc.ImportFile(path)
	if err != nil {
		return fmt.Errorf("importing %s: %w", path, err)
	}

	fmt.Printf("Imported %d workouts from %s\n", count, path)
	return nil
}

func runExport(ctx context.Context, db *store.Store, path string) error {
	records, _, err := db.LoadSnapshot()
	if errors.Is(err, store.ErrNoSnapshot) {
		return errors.New("no stored workouts to export; sync or import first")
	}
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	repository := repo.NewImported(records)
	syncSvc := service.NewSyncService(repository, nil)

	if err := syncSvc.ExportFile(ctx, path); err != nil {
		return fmt.Errorf("exporting to %s: %w", path, err)
	}

	fmt.Printf("Exported %d workouts to %s\n", len(records), path)
	return nil
}

func runOffline(db *store.Store, cfg *config.Config) error {
	records, _, err := db.LoadSnapshot()
	if errors.Is(err, store.ErrNoSnapshot) {
		return errors.New("no stored workouts; run a sync or import before --offline")
	}
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	repository := repo.NewImported(records)
	querySvc := service.NewQueryService(repository)
	syncSvc := service.NewSyncService(repository, db)

	app := tui.NewApp(querySvc, syncSvc, cfg.Display)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
