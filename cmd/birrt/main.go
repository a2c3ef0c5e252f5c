// Package main is the birrt command itself.
package main

import (
	"log"
	"os"

	"github.com/kh11kim/rrt/cli"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
