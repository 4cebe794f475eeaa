package main

import (
	"context"
	"log"

	"github.com/Jeremias-V/Mini-POS/cmd/server"
	"github.com/Jeremias-V/Mini-POS/internal/auth"
	"github.com/Jeremias-V/Mini-POS/internal/config"
	"github.com/Jeremias-V/Mini-POS/internal/storage"
)

var (
	srvAddr           = config.Env.ServerAddr
	postgresConnStr   = config.Env.PostgresConnStr
	tokenSecret       = config.Env.TokenSecret
	tokenExpiryInSecs = config.Env.TokenExpiryInSecs
	adminKey          = config.Env.AdminKey
)

func main() {
	log.SetFlags(log.Ldate | log.Llongfile)

	db, err := storage.NewPostgresDB(postgresConnStr)
	if err != nil {
		log.Fatal(err)
	}

	if err := storage.EnsureSchema(context.Background(), db); err != nil {
		log.Fatal(err)
	}

	srv := server.NewServer(&server.ServerConfig{
		Addr: srvAddr,
		DB:   db,
		TokenManager: auth.NewTokenService(
			tokenSecret,
			tokenExpiryInSecs,
		),
		AdminKey: adminKey,
	},
	)
	srv.Run()
}
