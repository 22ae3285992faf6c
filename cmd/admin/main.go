package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"cyberguard/internal/auth"
	"cyberguard/internal/cache"
	"cyberguard/internal/config"
	"cyberguard/internal/db"
	"cyberguard/internal/logging"
	"cyberguard/internal/repository"
	"cyberguard/internal/service"
)

const usage = `Usage: admin <command> [args]

Commands:
  create <uid> <email>   grant the admin role to a user, creating the profile if needed
  list                   list user profiles and their roles
  token <uid> <email>    print a signed development ID token
`

func main() {
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: "text"})

	ttl := flag.Duration("ttl", auth.DevTokenExpiry, "lifetime of tokens minted by the token command, at most auth.MaxTokenLifetime")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(cfg, flag.Args(), *ttl); err != nil {
		slog.Error("admin command failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, args []string, ttl time.Duration) error {
	if len(args) == 0 {
		flag.Usage()
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "token":
		if len(args) != 3 {
			return fmt.Errorf("usage: token <uid> <email>")
		}
		token, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer).IssueIDToken(args[1], args[2], ttl)
		if err != nil {
			return fmt.Errorf("issue token: %w", err)
		}
		fmt.Println(token)
		return nil
	case "create", "list":
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", args[0])
	}

	ctx := context.Background()
	users, closeFn, err := openUserService(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	if args[0] == "create" {
		if len(args) != 3 {
			return fmt.Errorf("usage: create <uid> <email>")
		}
		if err := users.GrantAdmin(ctx, args[1], args[2]); err != nil {
			return err
		}
		slog.Info("admin granted", "uid", args[1], "email", args[2])
		return nil
	}

	profiles, err := users.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "UID\tEMAIL\tROLE\tCREATED")
	for _, p := range profiles {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.UID, p.Email, p.Role, p.CreatedAt.Format(time.RFC3339))
	}
	return w.Flush()
}

func openUserService(cfg *config.Config) (service.UserService, func(), error) {
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(gormDB, false); err != nil {
		return nil, nil, err
	}

	// The cache is only used to drop stale profiles after a role change.
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	users := service.NewUserService(repository.NewUserRepository(gormDB), cacheClient, cfg.AllowSelfRoleAssign)
	return users, func() { _ = cacheClient.Close() }, nil
}
