package commands

import (
	"fmt"

	"msgboard"
)

const help = `msgboard %s

usage:
  msgboard run <path/to/config.yml>   start the message board server
  msgboard version                    print the version
  msgboard help                       show this message
`

func HandleHelp(_ []string) {
	fmt.Printf(help, msgboard.StringVersion()) //nolint
}
