package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dentalops/sitekit/internal/adapter/postgres"
	"github.com/dentalops/sitekit/internal/config"
	"github.com/dentalops/sitekit/internal/domain/clinic"
)

const adminUsage = `usage: sitekit admin <command>

commands:
  hash-token      print the bcrypt hash for an admin token
  create-clinic   register a new clinic
  list-clinics    list all clinics
  migrate-status  print the current migration version
`

func runAdmin(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, adminUsage)
		return errors.New("missing admin command")
	}

	switch args[0] {
	case "hash-token":
		return adminHashToken(args[1:])
	case "create-clinic":
		return adminCreateClinic(args[1:])
	case "list-clinics":
		return adminListClinics(args[1:])
	case "migrate-status":
		return adminMigrateStatus(args[1:])
	default:
		fmt.Fprint(os.Stderr, adminUsage)
		return fmt.Errorf("unknown admin command %q", args[0])
	}
}

// adminHashToken prints the bcrypt hash of a token for SITEKIT_ADMIN_TOKEN_HASH.
// The token is taken from -token or the SITEKIT_ADMIN_TOKEN env var so it can
// run in provisioning scripts.
func adminHashToken(args []string) error {
	fs := flag.NewFlagSet("hash-token", flag.ContinueOnError)
	token := fs.String("token", "", "token to hash (defaults to $SITEKIT_ADMIN_TOKEN)")
	cost := fs.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t := *token
	if t == "" {
		t = os.Getenv("SITEKIT_ADMIN_TOKEN")
	}
	if strings.TrimSpace(t) == "" {
		return errors.New("no token given: use -token or SITEKIT_ADMIN_TOKEN")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(t), *cost)
	if err != nil {
		return fmt.Errorf("hash token: %w", err)
	}
	fmt.Println(string(hash))
	return nil
}

func adminCreateClinic(args []string) error {
	fs := flag.NewFlagSet("create-clinic", flag.ContinueOnError)
	slug := fs.String("slug", "", "URL slug (required)")
	name := fs.String("name", "", "business name (required)")
	address := fs.String("address", "", "street address")
	phone := fs.String("phone", "", "phone number")
	placeURL := fs.String("place-url", "", "maps place URL")
	hours := fs.String("hours", "", `working hours, e.g. "Monday: 8:00 AM - 6:00 PM | Saturday: 9:00 AM - 4:00 PM"`)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *slug == "" || *name == "" {
		return errors.New("-slug and -name are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, cleanup, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	c, err := store.CreateClinic(ctx, &clinic.CreateRequest{
		Slug:         *slug,
		BusinessName: *name,
		Address:      *address,
		Phone:        *phone,
		PlaceURL:     *placeURL,
		WorkingHours: *hours,
	})
	if err != nil {
		return fmt.Errorf("create clinic: %w", err)
	}

	return json.NewEncoder(os.Stdout).Encode(c)
}

func adminListClinics(args []string) error {
	fs := flag.NewFlagSet("list-clinics", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, cleanup, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	clinics, err := store.ListClinics(ctx)
	if err != nil {
		return fmt.Errorf("list clinics: %w", err)
	}

	for _, c := range clinics {
		fmt.Printf("%s\t%s\t%s\n", c.ID, c.Slug, c.BusinessName)
	}
	return nil
}

func adminMigrateStatus(args []string) error {
	fs := flag.NewFlagSet("migrate-status", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	version, err := postgres.MigrationVersion(ctx, cfg.Postgres.DSN)
	if err != nil {
		return err
	}
	fmt.Printf("migration version: %d\n", version)
	return nil
}

func openStore(ctx context.Context) (*postgres.Store, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	pool, err := postgres.NewPool(ctx, cfg.Postgres)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres: %w", err)
	}

	return postgres.NewStore(pool), pool.Close, nil
}
