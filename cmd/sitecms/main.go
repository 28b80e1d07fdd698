package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/gokler/sitecms"
	"github.com/gokler/sitecms/content"
	"github.com/gokler/sitecms/store"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		if err := serve(); err != nil {
			log.Fatal(err)
		}
	case "create-admin":
		if len(os.Args) < 4 {
			fmt.Fprintln(os.Stderr, "Usage: sitecms create-admin <email> <password> [name]")
			os.Exit(1)
		}
		name := "Admin"
		if len(os.Args) > 4 {
			name = os.Args[4]
		}
		if err := createAdmin(os.Args[2], os.Args[3], name); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "passwd":
		if len(os.Args) < 4 {
			fmt.Fprintln(os.Stderr, "Usage: sitecms passwd <email> <new-password>")
			os.Exit(1)
		}
		if err := changePassword(os.Args[2], os.Args[3]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "seed":
		if err := seed(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("sitecms %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func configFromEnv() sitecms.SiteConfig {
	cookieSecure, _ := strconv.ParseBool(sitecms.EnvOr("COOKIE_SECURE", "false"))
	intakeLimit, _ := strconv.Atoi(sitecms.EnvOr("INTAKE_LIMIT_PER_HOUR", "0"))
	return sitecms.SiteConfig{
		Name:               os.Getenv("SITE_NAME"),
		URL:                os.Getenv("SITE_URL"),
		Description:        os.Getenv("SITE_DESCRIPTION"),
		Addr:               sitecms.EnvOr("ADDR", ":3000"),
		LogLevel:           sitecms.EnvOr("LOG_LEVEL", "info"),
		DatabasePath:       sitecms.EnvOr("DATABASE_PATH", "data/site.db"),
		SessionSecret:      sitecms.MustEnv("SESSION_SECRET"),
		CookieSecure:       cookieSecure,
		AdminEmail:         os.Getenv("ADMIN_EMAIL"),
		AdminPassword:      os.Getenv("ADMIN_PASSWORD"),
		IntakeLimitPerHour: intakeLimit,
	}
}

func serve() error {
	app := sitecms.New(configFromEnv(), sitecms.WithStaticDir(sitecms.EnvOr("STATIC_DIR", "public")))
	if err := app.Init(); err != nil {
		return err
	}
	defer app.Close()

	errc := make(chan error, 1)
	go func() { errc <- app.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	select {
	case err := <-errc:
		return err
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Printf("shutdown complete")
	return nil
}

// openService opens the database without starting the web server.
func openService() (*content.Service, func(), error) {
	st, err := store.Open(sitecms.EnvOr("DATABASE_PATH", "data/site.db"))
	if err != nil {
		return nil, nil, err
	}
	return content.New(st), func() { st.Close() }, nil
}

func createAdmin(email, password, name string) error {
	svc, closeDB, err := openService()
	if err != nil {
		return err
	}
	defer closeDB()
	u, err := svc.CreateUser(context.Background(), email, name, password)
	if errors.Is(err, content.ErrConflict) {
		return fmt.Errorf("a user with email %s already exists", email)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Created admin %s (%s)\n", u.Email, u.ID)
	return nil
}

func changePassword(email, password string) error {
	svc, closeDB, err := openService()
	if err != nil {
		return err
	}
	defer closeDB()
	if err := svc.ChangePassword(context.Background(), email, password); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return fmt.Errorf("no user with email %s", email)
		}
		return err
	}
	fmt.Printf("Password updated for %s\n", email)
	return nil
}

// seed adds the demo content as the admin named by ADMIN_EMAIL and
// ADMIN_PASSWORD, creating that account first on an empty database.
func seed() error {
	email, password := os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return errors.New("seed needs ADMIN_EMAIL and ADMIN_PASSWORD")
	}
	svc, closeDB, err := openService()
	if err != nil {
		return err
	}
	defer closeDB()

	ctx := context.Background()
	if _, err := svc.EnsureAdmin(ctx, email, password); err != nil {
		return err
	}
	u, err := svc.Authenticate(ctx, email, password)
	if err != nil {
		return fmt.Errorf("sign in as %s: %w", email, err)
	}
	who, err := svc.Resolve(ctx, u.ID)
	if err != nil {
		return err
	}
	res, err := svc.Seed(ctx, who)
	if err != nil {
		return err
	}
	fmt.Printf("Seeded %d posts, %d projects, %d testimonials, %d SEO rows", res.Posts, res.Projects, res.Testimonials, res.Seo)
	if res.Settings {
		fmt.Print(" and the site settings")
	}
	fmt.Println()
	return nil
}

func printUsage() {
	fmt.Println(`sitecms - construction company website and admin panel

Usage:
  sitecms <command> [arguments]

Commands:
  serve                                  Start the web server (default)
  create-admin <email> <password> [name] Add an admin account
  passwd <email> <new-password>          Reset an admin password
  seed                                   Add demo content (skips existing records)
  version                                Print the sitecms version
  help                                   Show this help message

Configuration is read from the environment and an optional .env file:
  SESSION_SECRET (required), SITE_NAME, SITE_URL, SITE_DESCRIPTION, ADDR,
  DATABASE_PATH, STATIC_DIR, COOKIE_SECURE, LOG_LEVEL, ADMIN_EMAIL,
  ADMIN_PASSWORD, INTAKE_LIMIT_PER_HOUR`)
}
