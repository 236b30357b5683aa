package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/configvault/config-vault/pkg/config"
	"github.com/configvault/config-vault/pkg/db"
	"github.com/configvault/config-vault/pkg/server"
	"github.com/configvault/config-vault/pkg/server/endpoints"
)

func defaultBindAddress() string {
	if addr := os.Getenv("CONFIG_VAULT_BIND_ADDRESS"); addr != "" {
		return addr
	}
	return config.Get().BindAddress
}

func defaultPort() string {
	if port := os.Getenv("CONFIG_VAULT_PORT"); port != "" {
		return port
	}
	return strconv.Itoa(config.Get().Port)
}

func defaultPortInt() int {
	if port := os.Getenv("CONFIG_VAULT_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return config.Get().Port
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the config-vault API server",
	Long: `Run the config-vault API server.

The server requires the DATABASE_URL environment variable.

By default, database migrations are run on startup. Use --no-migrate to skip.
Use --watch-config to reload the configuration file on change.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast)
		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		// `vaultctl configuration apply` delivers SIGHUP
		startSighupReloader()

		watchConfig, _ := cmd.Flags().GetBool("watch-config")
		if watchConfig {
			if err := startConfigWatcher(cfg.ConfigFilePath()); err != nil {
				fmt.Fprintln(os.Stderr, "Unable to watch config file:", err)
				os.Exit(1)
			}
		}

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(database, host, port)

		endpoints.RegisterAll(s)

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

// startSighupReloader reloads the configuration singleton on SIGHUP.
func startSighupReloader() {
	sighup := make(chan os.Signal, 1)
	signal.Notify(sighup, syscall.SIGHUP)
	go func() {
		for range sighup {
			if err := config.Reload(); err != nil {
				log.Printf("Config reload failed: %v", err)
				continue
			}
			log.Println("Configuration reloaded")
		}
	}()
}

// startConfigWatcher reloads the configuration singleton whenever the
// config file is rewritten. Editors and orchestrators often replace the
// file instead of writing in place, so Create events count too.
func startConfigWatcher(configFile string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := watcher.Add(filepath.Dir(configFile)); err != nil {
		_ = watcher.Close()
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != configFile {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := config.Reload(); err != nil {
					log.Printf("Config reload failed: %v", err)
					continue
				}
				log.Printf("Configuration reloaded from %s", configFile)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Config watcher error: %v", err)
			}
		}
	}()
	return nil
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
	serverCmd.Flags().Bool("watch-config", false, "reload configuration when the config file changes")
}
