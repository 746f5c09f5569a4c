// Command akita-homepage builds, serves, and previews the Akita homepage.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
)

// CLI is the command-line surface.
type CLI struct {
	Config string `help:"Settings file (default ~/.config/akita-homepage/config.yaml)." type:"path" placeholder:"PATH"`

	Build   BuildCmd   `cmd:"" help:"Render the site into a directory."`
	Serve   ServeCmd   `cmd:"" help:"Serve the site over HTTP."`
	Preview PreviewCmd `cmd:"" help:"Browse the homepage in the terminal."`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("akita-homepage"),
		kong.Description("The Akita simulator framework homepage."),
		kong.UsageOnError(),
	)

	app, err := newApp(cli.Config, kctx.Command() == "preview")
	if err != nil {
		fmt.Fprintf(os.Stderr, "akita-homepage: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	if err := kctx.Run(app); err != nil {
		app.Logger.Error("command failed", zap.String("command", kctx.Command()), zap.Error(err))
		app.Close()
		os.Exit(1)
	}
}
