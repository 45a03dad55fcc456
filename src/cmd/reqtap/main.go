// FILE: reqtap/src/cmd/reqtap/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"reqtap/src/internal/version"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "reqtap",
		Usage: "Structured access logging for fasthttp services",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the TOML config file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the demo echo server with access logging",
				Action: func(ctx context.Context, c *cli.Command) error {
					return serve(ctx, c.String("config"))
				},
			},
			{
				Name:  "version",
				Usage: "Print version information",
				Action: func(ctx context.Context, c *cli.Command) error {
					fmt.Println(version.String())
					return nil
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return serve(ctx, c.String("config"))
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
