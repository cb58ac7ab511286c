package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "blogctl",
		Short: "Administrative tasks for the Imersão Completa blog",
		Long: `blogctl signs in with a blog account and runs editorial tasks
against the same database the API uses.

Examples:
  blogctl whoami --email admin@imersaocompleta.com.br --password ...
  blogctl export-subscribers --token $TOKEN --out inscritos.csv
  blogctl validate --file rascunho.html`,
		SilenceUsage: true,
	}

	root.AddCommand(newWhoamiCommand())
	root.AddCommand(newExportCommand())
	root.AddCommand(newValidateCommand())
	root.AddCommand(newResetPasswordCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
