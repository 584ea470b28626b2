package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"gemini-qa/internal/app"
	"gemini-qa/internal/repl"
)

func main() {
	rootCommand := cobra.Command{
		Use:           "gemini-qa",
		Short:         "Interactive question answering over the Gemini API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := app.Build()
			if err != nil {
				return err
			}
			if deps.QA == nil {
				return fmt.Errorf("GEMINI_API_KEY is not set")
			}

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt)
			go func() {
				<-sig
				fmt.Println("\n\nExiting... Goodbye!")
				os.Exit(0)
			}()

			return repl.New(deps.QA, os.Stdin, os.Stdout).Run(context.Background())
		},
	}
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err)
		os.Exit(1)
	}
}
