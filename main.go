package main

import (
	"fmt"
	"gitlab.com/aoterocom/AOBankroll/app"
	"gitlab.com/aoterocom/AOBankroll/helpers"
	"os"
)

func main() {
	if err := app.NewApp().Run(os.Args); err != nil {
		helpers.Logger.Errorln(err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
