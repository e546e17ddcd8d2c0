package commands

import (
	"os"

	"msgboard/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("msgboard error", "err", err.Error())
	os.Exit(1)
}
