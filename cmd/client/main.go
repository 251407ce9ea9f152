package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Induma-Magammana/FitLife-Tracker/internal/client/api"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/client/cli"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/client/session"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "FitLife Tracker server URL")
	sessionPath := flag.String("session", defaultSessionPath(), "path of the cached session file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sess := session.Restore(session.NewCache(*sessionPath))
	client := api.New(*server, sess.Token)

	app := cli.NewApp(client, sess, os.Stdin, os.Stdout)
	app.Run(ctx)
}

// defaultSessionPath puts the cache under the user config directory, falling
// back to the working directory when none is available.
func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("cannot resolve config directory, caching session locally: %v", err)
		return "session.json"
	}
	return filepath.Join(dir, "fitlife", "session.json")
}
