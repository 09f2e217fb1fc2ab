package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/themizzi/wpaccept/internal/browser"
	internalcli "github.com/themizzi/wpaccept/internal/cli"
	"github.com/themizzi/wpaccept/internal/config"
	"github.com/themizzi/wpaccept/internal/database"
	"github.com/themizzi/wpaccept/internal/repository"
)

var version = "0.1.0"

// loadConfig loads the suite configuration named by the --config flag
func loadConfig(c *cli.Context) (*config.SuiteConfig, error) {
	cfg, err := config.LoadSuiteConfig(c.String("config"), os.Getenv)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// RunCommand returns the run command
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Run the acceptance feature files against WordPress",
		ArgsUsage: "[feature paths...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "tags", Usage: "only run scenarios matching this tag expression"},
			&cli.StringFlag{Name: "format", Value: "pretty", Usage: "godog output format"},
			&cli.IntFlag{Name: "concurrency", Value: 1, Usage: "scenarios to run in parallel, each in its own browser context"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			logger, closeLog := internalcli.NewDebugLogger(c.String("log-file"), c.Bool("verbose"))
			defer closeLog.Close()

			launcher, err := browser.Launch(cfg.Browser)
			if err != nil {
				return err
			}
			defer launcher.Close()

			return internalcli.RunSuite(internalcli.PageOpener(launcher, cfg, logger), internalcli.SuiteOptions{
				Paths:       c.Args().Slice(),
				Tags:        c.String("tags"),
				Format:      c.String("format"),
				Concurrency: c.Int("concurrency"),
			})
		},
	}
}

// CheckCommand returns the check command
func CheckCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Smoke test Chrome, the database and the site: insert a post and look for it on the home page",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			logger, closeLog := internalcli.NewDebugLogger(c.String("log-file"), c.Bool("verbose"))
			defer closeLog.Close()

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			// Connect to database
			db, err := database.Open(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()
			log.Println("Connected to database successfully")

			if err := database.RunMigrations(ctx, db, cfg.Database.Driver, cfg.Database.TablePrefix); err != nil {
				return fmt.Errorf("failed to run database migrations: %w", err)
			}

			launcher, err := browser.Launch(cfg.Browser)
			if err != nil {
				return err
			}
			defer launcher.Close()

			return internalcli.RunCheck(ctx, internalcli.CheckDependencies{
				Config:   cfg,
				Launcher: launcher,
				Posts:    repository.NewPostRepository(db, cfg.Database.Driver, cfg.Database.TablePrefix),
				Logger:   logger,
			})
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "wpaccept",
		Usage:   "Acceptance tests for the reading time block",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "wpaccept.yaml", Usage: "suite configuration file; environment variables take precedence"},
			&cli.StringFlag{Name: "log-file", Usage: "write step debug output to this rotating log file"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "print step debug output to stderr"},
		},
		Commands: []*cli.Command{
			RunCommand(),
			CheckCommand(),
		},
	}

	if err := app.RunContext(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
