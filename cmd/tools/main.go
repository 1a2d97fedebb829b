// Command tools administers the measurements database.
//
//	tools migrate          apply pending migrations
//	tools migrate status   list migrations and whether they ran
//	tools clients          list client ids with their row counts and time span
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli"

	"github.com/bjhara/temp-hum-logger/internal/config"
	"github.com/bjhara/temp-hum-logger/internal/db"
	"github.com/bjhara/temp-hum-logger/internal/logging"
	"github.com/bjhara/temp-hum-logger/internal/migrate"
)

const appName = "tools"

var version = "dev"

func main() {
	app := newApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = "administer the temperature/humidity database"
	app.Version = version
	app.Writer = out
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "env-file",
			Usage: "optional .env file loaded before reading the environment",
			Value: ".env",
		},
		cli.StringFlag{
			Name:   "db",
			Usage:  "SQLite file (overrides SQLITE_PATH)",
			EnvVar: "SQLITE_PATH",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "migrate",
			Usage:  "apply pending schema migrations",
			Action: withDB(runMigrate),
			Subcommands: []cli.Command{
				{
					Name:   "status",
					Usage:  "list migrations and whether they have been applied",
					Action: withDB(runMigrateStatus),
				},
			},
		},
		{
			Name:   "clients",
			Usage:  "list client ids with row counts and time span",
			Action: withDB(runClients),
		},
	}
	return app
}

type dbAction func(c *cli.Context, conn *sql.DB) error

func withDB(action dbAction) func(*cli.Context) error {
	return func(c *cli.Context) error {
		if err := godotenv.Load(c.GlobalString("env-file")); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", c.GlobalString("env-file"), err)
		}
		cfg, err := config.LoadFromEnv()
		if err != nil {
			return err
		}
		if p := c.GlobalString("db"); p != "" {
			cfg.SQLitePath = p
			cfg.SQLiteDSN = ""
		}
		logger := logging.New(os.Stderr, cfg, version, appName)

		conn, err := db.Open(cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(conn); err != nil {
				logger.Error("db close", "err", err)
			}
		}()
		return action(c, conn)
	}
}

func runMigrate(c *cli.Context, conn *sql.DB) error {
	done, err := migrate.Run(context.Background(), conn, nil)
	if err != nil {
		return err
	}
	if len(done) == 0 {
		fmt.Fprintln(c.App.Writer, "schema up to date")
		return nil
	}
	for _, m := range done {
		fmt.Fprintf(c.App.Writer, "applied %s_%s\n", m.Version, m.Name)
	}
	return nil
}

func runMigrateStatus(c *cli.Context, conn *sql.DB) error {
	all, err := migrate.Status(context.Background(), conn)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tNAME\tAPPLIED")
	for _, m := range all {
		fmt.Fprintf(tw, "%s\t%s\t%t\n", m.Version, m.Name, m.Applied)
	}
	return tw.Flush()
}

func runClients(c *cli.Context, conn *sql.DB) error {
	rows, err := conn.QueryContext(context.Background(), `
		SELECT client_id, COUNT(*), MIN(timestamp), MAX(timestamp)
		FROM measurements
		GROUP BY client_id
		ORDER BY client_id`)
	if err != nil {
		return fmt.Errorf("query clients (run migrate first?): %w", err)
	}
	defer func() { _ = rows.Close() }()

	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CLIENT\tROWS\tFIRST\tLAST")
	for rows.Next() {
		var (
			id          string
			n           int
			first, last int64
		)
		if err := rows.Scan(&id, &n, &first, &last); err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", id, n,
			time.Unix(first, 0).UTC().Format(time.RFC3339),
			time.Unix(last, 0).UTC().Format(time.RFC3339))
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return tw.Flush()
}
