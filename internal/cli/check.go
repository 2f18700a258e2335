package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrUnhealthy is returned by the check command when a health check fails.
var ErrUnhealthy = errors.New("one or more health checks failed")

func newCheckCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that the catalog file can be written",
		Long: `Run the health checks and print one line per check. The command fails
when any check fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := s.health.CheckAll(cmd.Context())

			for _, name := range result.Names() {
				check := result.Checks[name]

				line := fmt.Sprintf("%s: %s (%s)", name, check.Status, check.Duration)
				if check.Message != "" {
					line += " " + check.Message
				}

				writeLine(cmd, line)
			}

			writeLine(cmd, "catalog file: "+s.store.Location())

			if !result.Healthy() {
				return ErrUnhealthy
			}

			return nil
		},
	}
}
