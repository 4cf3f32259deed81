package main

import (
	"context"
	"flag"
	"log"
	"os"

	"Tractor/ApiClient"
	"Tractor/Config"
	"Tractor/DevServer"
	"Tractor/Models"
	"Tractor/Session"
	"Tractor/Shell"
)

func main() {
	serve := flag.Bool("serve", false, "run the reference API server instead of the console")
	flag.Parse()

	cfg := Config.Load()

	if *serve {
		db, err := Models.Connect(cfg.DbFile)
		if err != nil {
			log.Fatal("Failed to open database:", err)
		}
		Models.SeedUsers(db)

		server := DevServer.New(db, cfg.JwtSecret)
		if err := server.Listen(cfg.DevServerAddr); err != nil {
			log.Fatal(err)
		}
		return
	}

	session := Session.NewStore(cfg.SessionFile)
	api := ApiClient.New(cfg.ApiBaseURL, session)

	app := Shell.NewApp(api, session, os.Stdin, os.Stdout)
	app.Run(context.Background())
}
