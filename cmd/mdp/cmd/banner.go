package cmd

import "github.com/fatih/color"

// Version is set at build time with -ldflags "-X".
var Version = "dev"

const banner = `
                _
  _ __ ___   __| |_ __
 | '_ ` + "`" + ` _ \ / _` + "`" + ` | '_ \
 | | | | | | (_| | |_) |
 |_| |_| |_|\__,_| .__/
                 |_|
`

func (a *app) printBanner() {
	color.New(color.FgBlue).Fprint(a.stdout, banner)
	color.New(color.FgGreen).Fprintf(a.stdout, "  "+a.msg.Version+"\n\n", "mdp", Version)
}
