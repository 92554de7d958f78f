package main

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/nspcc-dev/certification-contract/rpc/certification"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/spf13/cobra"
)

var requestCmd = &cobra.Command{
	Use:   "request <artifact> <version>",
	Short: "Request certification of the contract version",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		artifact, err := parseAccount(args[0])
		if err != nil {
			return fmt.Errorf("invalid artifact: %w", err)
		}
		description, _ := cmd.Flags().GetString("description")
		repository, _ := cmd.Flags().GetString("repository")

		s, err := dialSigner(cmd.Context())
		if err != nil {
			return err
		}
		defer s.close()

		txHash, vub, err := s.writer.RequestCertification(s.account, artifact, args[1], description, repository)
		return s.await(cmd.Context(), txHash, vub, err)
	},
}

var requestStatusCmd = &cobra.Command{
	Use:   "request-status <artifact> <version> <pending|in-review|certified|rejected>",
	Short: "Change certification request status (owner or active auditor)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		artifact, err := parseAccount(args[0])
		if err != nil {
			return fmt.Errorf("invalid artifact: %w", err)
		}
		status, ok := certification.ParseRequestStatus(strings.ReplaceAll(args[2], "-", " "))
		if !ok {
			return fmt.Errorf("unknown request status %q", args[2])
		}

		s, err := dialSigner(cmd.Context())
		if err != nil {
			return err
		}
		defer s.close()

		txHash, vub, err := s.writer.SetRequestStatus(s.account, artifact, args[1], status)
		return s.await(cmd.Context(), txHash, vub, err)
	},
}

var issueCmd = &cobra.Command{
	Use:   "issue <artifact> <version> <rating>",
	Short: "Issue certification as an active auditor",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		artifact, err := parseAccount(args[0])
		if err != nil {
			return fmt.Errorf("invalid artifact: %w", err)
		}
		rating, err := parseBounded(args[2], certification.MinRating, certification.MaxRating)
		if err != nil {
			return fmt.Errorf("invalid rating: %w", err)
		}
		report, _ := cmd.Flags().GetString("report")
		notes, _ := cmd.Flags().GetString("notes")
		validFor, _ := cmd.Flags().GetDuration("valid-for")

		s, err := dialSigner(cmd.Context())
		if err != nil {
			return err
		}
		defer s.close()

		txHash, vub, err := s.writer.IssueCertification(s.account, artifact, args[1], rating, report, validUntil(time.Now(), validFor), notes)
		return s.await(cmd.Context(), txHash, vub, err)
	},
}

var revokeCmd = &cobra.Command{
	Use:   "revoke <artifact> <version>",
	Short: "Revoke certification (issuing auditor or owner)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		artifact, err := parseAccount(args[0])
		if err != nil {
			return fmt.Errorf("invalid artifact: %w", err)
		}

		s, err := dialSigner(cmd.Context())
		if err != nil {
			return err
		}
		defer s.close()

		txHash, vub, err := s.writer.RevokeCertification(s.account, artifact, args[1])
		return s.await(cmd.Context(), txHash, vub, err)
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify <artifact> <version>",
	Short: "Check whether the contract version is certified",
	Long: `Check whether the contract version is certified.

With --tx the check is sent as a transaction leaving CertificationVerified
notification on chain, otherwise the contract is only queried.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		artifact, err := parseAccount(args[0])
		if err != nil {
			return fmt.Errorf("invalid artifact: %w", err)
		}
		withTx, _ := cmd.Flags().GetBool("tx")

		if withTx {
			s, err := dialSigner(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			txHash, vub, err := s.writer.VerifyCertification(artifact, args[1])
			if err = s.await(cmd.Context(), txHash, vub, err); err != nil {
				return err
			}
		}

		r, err := dialRemote(cmd.Context())
		if err != nil {
			return err
		}
		defer r.close()

		ok, err := r.reader.IsCertified(artifact, args[1])
		if err != nil {
			return fmt.Errorf("check certification: %w", certification.WrapError(err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), ok)
		return nil
	},
}

func init() {
	requestCmd.Flags().String("description", "", "request description")
	requestCmd.Flags().String("repository", "", "source repository reference")

	issueCmd.Flags().String("report", "", "audit report reference")
	issueCmd.Flags().String("notes", "", "auditor notes")
	issueCmd.Flags().Duration("valid-for", 0, "certification lifetime (no expiration if zero)")

	verifyCmd.Flags().Bool("tx", false, "send verification transaction")

	rootCmd.AddCommand(requestCmd, requestStatusCmd, issueCmd, revokeCmd, verifyCmd)
}

// validUntil converts certification lifetime into the chain timestamp in
// milliseconds. Zero lifetime means no expiration.
func validUntil(now time.Time, lifetime time.Duration) *big.Int {
	if lifetime <= 0 {
		return big.NewInt(0)
	}
	return big.NewInt(now.Add(lifetime).UnixMilli())
}

func artifactVersion(args []string) (util.Uint160, string, error) {
	artifact, err := parseAccount(args[0])
	if err != nil {
		return util.Uint160{}, "", fmt.Errorf("invalid artifact: %w", err)
	}
	return artifact, args[1], nil
}
