package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the servicemail command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "servicemail",
		Short:         "Compose Geek Squad service emails",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(serveCmd(), composeCmd())
	return root
}

// Execute runs the command tree. Rejected input has already been reported,
// other errors are printed to stderr.
func Execute(ctx context.Context) error {
	err := NewRootCmd().ExecuteContext(ctx)
	if err != nil && !errors.Is(err, ErrRejected) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
