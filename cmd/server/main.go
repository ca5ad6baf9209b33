package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/repovault/internal/flagx"
	"github.com/dmitrijs2005/repovault/internal/server"
	"github.com/dmitrijs2005/repovault/internal/server/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	err = run(ctx, app, os.Args[1:])
	_ = app.Close()
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}

// run dispatches the one-shot modes; without any of them it serves.
func run(ctx context.Context, app *server.App, args []string) error {
	if flagx.HasFlag(args, "-migrate", "--migrate") {
		return app.Migrate(ctx)
	}

	if login, ok := flagx.Value(args, "-register-user", "--register-user"); ok {
		id, err := app.RegisterUser(ctx, login)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	}

	if login, ok := flagx.Value(args, "-issue-token", "--issue-token"); ok {
		token, err := app.IssueToken(ctx, login)
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	}

	return app.Run(ctx)
}
