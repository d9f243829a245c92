// Command clubctl manages user accounts directly in the document store.
// There is no HTTP route for creating accounts, so administrators are
// provisioned here.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/iliyamo/sports-club/internal/database"
	"github.com/iliyamo/sports-club/internal/model"
	"github.com/iliyamo/sports-club/internal/repository"
)

func main() {
	_ = godotenv.Load()
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("clubctl")
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "clubctl",
		Usage: "manage sports club accounts",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "uri", EnvVars: []string{"MONGODB_URI"}, Usage: "document store connection string", Required: true},
			&cli.StringFlag{Name: "db", EnvVars: []string{"DB_NAME"}, Value: "sports-club", Usage: "database name"},
		},
		Commands: []*cli.Command{createUserCommand()},
	}
}

func createUserCommand() *cli.Command {
	return &cli.Command{
		Name:  "create-user",
		Usage: "create an account with a bcrypt-hashed password",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", EnvVars: []string{"CLUBCTL_PASSWORD"}, Required: true},
			&cli.StringFlag{Name: "role", Value: model.RoleAdmin},
			&cli.IntFlag{Name: "cost", EnvVars: []string{"BCRYPT_COST"}, Value: 10},
		},
		Action: func(c *cli.Context) error {
			ctx, cancel := context.WithTimeout(c.Context, 15*time.Second)
			defer cancel()

			client, err := database.Open(ctx, c.String("uri"))
			if err != nil {
				return err
			}
			defer func() { _ = client.Disconnect(context.Background()) }()

			users := repository.NewUserRepo(client.Database(c.String("db")).Collection(database.UsersCollection))
			if err := users.EnsureEmailIndex(ctx); err != nil {
				return fmt.Errorf("email index: %w", err)
			}
			u, err := users.Create(ctx, c.String("email"), c.String("password"), c.String("role"), c.Int("cost"))
			if errors.Is(err, repository.ErrEmailExists) {
				return cli.Exit("an account with that email already exists", 1)
			}
			if err != nil {
				return err
			}
			log.Info().Str("id", u.ID.Hex()).Str("email", u.Email).Str("role", u.Role).Msg("account created")
			return nil
		},
	}
}
