package service

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"yelpcamp/app/seed"
	"yelpcamp/config"
	"yelpcamp/logging"
)

// DefaultBackupDir is where backup writes unless -dir is given.
const DefaultBackupDir = "data/backups"

var commands = map[string]func(args []string) int{
	"serve":   RunAppServer,
	"seed":    seedDB,
	"clean":   clean,
	"backup":  backup,
	"restore": restore,
}

// IsCommand reports whether HandleCommand knows name.
func IsCommand(name string) bool {
	_, ok := commands[name]
	return ok || name == "help"
}

// HandleCommand runs a subcommand and returns an exit code.
func HandleCommand(args []string) int {
	if len(args) < 1 {
		PrintHelp()
		return 1
	}

	if args[0] == "help" {
		PrintHelp()
		return 0
	}
	run, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(output, "Unknown command: %s\n\n", args[0])
		PrintHelp()
		return 1
	}
	return run(args[1:])
}

// PrintHelp prints the command summary.
func PrintHelp() {
	helpText := `Usage: yelpcamp <command> [options]

Commands:
  serve [-addr <addr>]                  Run the web application
  seed [-count <n>] [-seed <n>]         Replace all data with random campgrounds
  clean [-yes]                          Delete all campgrounds and reviews
  backup [-dir <dir>]                   Create a backup of the database (badger only)
  restore [-yes] <file>                 Restore the database from a backup (badger only)
  version                               Show version information
  help                                  Display this help message

Configuration is read from config.yaml (or CONFIG_PATH) and YELPCAMP_* variables.
`
	fmt.Fprintln(output, helpText)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	return fs
}

// parseFlags returns an exit code and false when the command should stop.
func parseFlags(fs *flag.FlagSet, args []string) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0, false
		}
		return 1, false
	}
	return 0, true
}

// seedDB replaces the stored data with generated campgrounds.
func seedDB(args []string) int {
	fs := newFlagSet("seed")
	count := fs.Int("count", 0, "number of campgrounds to insert (defaults to seed.count)")
	seedValue := fs.Uint64("seed", 0, "random seed, 0 picks one")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(output, "Error: %v\n", err)
		return 1
	}
	n := cfg.Seed.Count
	if *count != 0 {
		n = *count
	}

	ctx := context.Background()
	st, err := openStore(ctx, cfg.Store)
	if err != nil {
		fmt.Fprintf(output, "Failed to open database: %v\n", err)
		return 1
	}
	defer st.close()

	inserted, err := seed.New(st.campgrounds, st.reviews, *seedValue).Run(ctx, n)
	if err != nil {
		logging.Err(err).Msg("Seeding failed")
		fmt.Fprintf(output, "Failed to seed database: %v\n", err)
		return 1
	}
	fmt.Fprintf(output, "Seeded %d campgrounds\n", inserted)
	return 0
}

// clean removes all campgrounds and reviews.
func clean(args []string) int {
	fs := newFlagSet("clean")
	yes := fs.Bool("yes", false, "do not ask for confirmation")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(output, "Error: %v\n", err)
		return 1
	}
	if cfg.Store.Driver == config.DriverBadger {
		if _, err := os.Stat(cfg.Store.BadgerPath); os.IsNotExist(err) {
			fmt.Fprintln(output, "Database is already clean (does not exist)")
			return 0
		}
	}

	if !*yes && !confirm("Are you sure you want to clean the database? This cannot be undone.") {
		fmt.Fprintln(output, "Operation cancelled")
		return 0
	}

	ctx := context.Background()
	st, err := openStore(ctx, cfg.Store)
	if err != nil {
		fmt.Fprintf(output, "Failed to open database: %v\n", err)
		return 1
	}
	defer st.close()

	if err := st.clear(ctx); err != nil {
		fmt.Fprintf(output, "Failed to clean database: %v\n", err)
		return 1
	}
	fmt.Fprintln(output, "Database cleaned successfully")
	return 0
}

// loadBadgerConfig loads the configuration and rejects other drivers.
func loadBadgerConfig(command string) (*config.Config, bool) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(output, "Error: %v\n", err)
		return nil, false
	}
	if cfg.Store.Driver != config.DriverBadger {
		fmt.Fprintf(output, "Error: %s is only supported by the %s driver\n", command, config.DriverBadger)
		return nil, false
	}
	return cfg, true
}

// backup writes a full backup of the Badger database.
func backup(args []string) int {
	fs := newFlagSet("backup")
	dir := fs.String("dir", DefaultBackupDir, "directory to write the backup to")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	cfg, ok := loadBadgerConfig("backup")
	if !ok {
		return 1
	}
	if _, err := os.Stat(cfg.Store.BadgerPath); os.IsNotExist(err) {
		fmt.Fprintln(output, "No database exists to backup")
		return 1
	}
	if err := os.MkdirAll(*dir, 0755); err != nil {
		fmt.Fprintf(output, "Failed to create backup directory: %v\n", err)
		return 1
	}

	st, err := openStore(context.Background(), cfg.Store)
	if err != nil {
		fmt.Fprintf(output, "Failed to open database: %v\n", err)
		return 1
	}
	defer st.close()

	backupFile := filepath.Join(*dir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
	f, err := os.Create(backupFile)
	if err != nil {
		fmt.Fprintf(output, "Failed to create backup file: %v\n", err)
		return 1
	}
	defer f.Close()

	if _, err := st.badger.Backup(f); err != nil {
		fmt.Fprintf(output, "Failed to backup database: %v\n", err)
		return 1
	}
	fmt.Fprintf(output, "Database backed up successfully to %s\n", backupFile)
	return 0
}

// restore replaces the Badger database contents with a backup.
func restore(args []string) int {
	fs := newFlagSet("restore")
	yes := fs.Bool("yes", false, "replace existing data without asking")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(output, "Error: backup file path required for restore")
		return 1
	}
	backupFile := fs.Arg(0)

	fi, err := os.Stat(backupFile)
	if os.IsNotExist(err) {
		fmt.Fprintf(output, "Backup file does not exist: %s\n", backupFile)
		return 1
	}
	if err != nil {
		fmt.Fprintf(output, "Failed to stat backup file: %v\n", err)
		return 1
	}
	if fi.Size() == 0 {
		fmt.Fprintf(output, "Backup file is empty: %s\n", backupFile)
		return 1
	}

	cfg, ok := loadBadgerConfig("restore")
	if !ok {
		return 1
	}

	ctx := context.Background()
	st, err := openStore(ctx, cfg.Store)
	if err != nil {
		fmt.Fprintf(output, "Failed to open database: %v\n", err)
		return 1
	}
	defer st.close()

	existing, err := st.campgrounds.List(ctx)
	if err != nil {
		fmt.Fprintf(output, "Failed to read database: %v\n", err)
		return 1
	}
	if len(existing) > 0 {
		if !*yes && !confirm("Existing data found. Do you want to replace it?") {
			fmt.Fprintln(output, "Operation cancelled")
			return 1
		}
		if err := st.clear(ctx); err != nil {
			fmt.Fprintf(output, "Failed to remove existing data: %v\n", err)
			return 1
		}
	}

	f, err := os.Open(backupFile)
	if err != nil {
		fmt.Fprintf(output, "Failed to open backup file: %v\n", err)
		return 1
	}
	defer f.Close()

	if err := st.badger.Restore(f); err != nil {
		fmt.Fprintf(output, "Failed to restore database: %v\n", err)
		return 1
	}
	fmt.Fprintln(output, "Database restored successfully")
	return 0
}
