package main

import (
	"fmt"
	"os"

	"network/config"
	"network/pkg/database"
	"network/pkg/log"
	"network/pkg/server"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	// .env.<env>.local > .env.local > .env.<env> > .env，已存在的环境变量不会被覆盖
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	for _, file := range []string{".env." + env + ".local", ".env.local", ".env." + env, ".env"} {
		_ = godotenv.Load(file)
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		env = v
	}

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "network social feed api",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file path",
				Value:   fmt.Sprintf("configs/config.%s.yaml", env),
				EnvVars: []string{"APP_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					cfg := config.New(ctx.String("config"))
					log.SetDebug(cfg.Debug())
					appProvider := InitServer(cfg)
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					cfg := config.New(ctx.String("config"))
					if err := database.Migrate(database.NewDB(cfg)); err != nil {
						return err
					}
					log.L.Info("migrate success")
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
