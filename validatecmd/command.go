// Package validatecmd provides a reusable "validate" command that docsforge
// CLIs mount to check configuration values before saving them.
package validatecmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/docsforge/docs-core/domainutil"
	"github.com/docsforge/docs-core/logutil"
	"github.com/docsforge/docs-core/repourl"
	"github.com/docsforge/docs-core/settings"
)

// NewCommand creates the validate command tree. The supplied settings are the
// defaults; per-invocation flags can override the policy.
func NewCommand(s *settings.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate project configuration values",
	}
	cmd.AddCommand(newRepoCommand(s))
	cmd.AddCommand(newDomainCommand(s))
	return cmd
}

// AddPolicyFlags registers the repository policy flags on an existing flag
// set, for consumers that wire policy onto their own commands.
func AddPolicyFlags(flags *pflag.FlagSet, s *settings.Settings) {
	flags.BoolVar(&s.AllowPrivateRepos, "allow-private", s.AllowPrivateRepos,
		"Allow ssh/ssh+git repository URLs")
	flags.BoolVar(&s.Debug, "debug", s.Debug,
		"Allow file:// repository URLs (local development)")
}

func newRepoCommand(s *settings.Settings) *cobra.Command {
	var submodule bool
	cmd := &cobra.Command{
		Use:   "repo <url>",
		Short: "Validate a repository URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logutil.Setup(s.Debug)
			policy := s.Policy()
			logutil.Debugf("validating repository URL with policy %+v", policy)

			check := repourl.Validate
			if submodule {
				check = repourl.ValidateSubmodule
			}
			if err := check(args[0], policy); err != nil {
				return err
			}
			fmt.Printf("valid repository URL: %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&submodule, "submodule", false,
		"Validate as a submodule URL (relative paths allowed)")
	AddPolicyFlags(cmd.Flags(), s)
	return cmd
}

func newDomainCommand(s *settings.Settings) *cobra.Command {
	var asciiOnly bool
	cmd := &cobra.Command{
		Use:   "domain <name>",
		Short: "Validate a custom domain name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logutil.Setup(s.Debug)

			check := domainutil.Validate
			if asciiOnly {
				check = domainutil.ValidateASCII
			}
			if err := check(args[0]); err != nil {
				return err
			}
			fmt.Printf("valid domain name: %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&asciiOnly, "ascii-only", false,
		"Reject internationalized domain names")
	return cmd
}
