package commands

import (
	"fmt"
	"os"

	"folio/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("folio error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println(`folio media server

usage:
  folio run <config.yml>   start the server
  folio version            print the version
  folio help               show this message`) //nolint
}
