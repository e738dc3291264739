package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/tastebud-app/tastebud-backend/internal/client/cli"
	"github.com/tastebud-app/tastebud-backend/internal/localstore"
)

func main() {
	server := flag.String("server", defaultServer(), "backend base URL")
	storePath := flag.String("store", "", "local store file (defaults to the user config dir)")
	flag.Parse()

	path := *storePath
	if path == "" {
		var err error
		path, err = localstore.DefaultPath()
		if err != nil {
			log.Fatalf("resolve store path: %v", err)
		}
	}

	kv, err := localstore.OpenKV(path)
	if err != nil {
		log.Fatalf("open local store: %v", err)
	}

	app := cli.NewApp(*server, kv)
	app.Run(context.Background())
}

func defaultServer() string {
	if v := os.Getenv("TASTEBUD_SERVER"); v != "" {
		return v
	}
	return "http://localhost:3000"
}
