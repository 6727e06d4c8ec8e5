package main

import (
	"fmt"
	"os"

	"learning-resources/cmd/resources/cli"
)

func main() {
	root := cli.NewRootCommand()

	root.AddCommand(cli.NewUploadCommand())
	root.AddCommand(cli.NewDownloadCommand())
	root.AddCommand(cli.NewViewCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
