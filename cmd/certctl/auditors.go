package main

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/certification-contract/rpc/certification"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Submit auditor application from the wallet account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		company, _ := cmd.Flags().GetString("company")
		website, _ := cmd.Flags().GetString("website")
		credentials, _ := cmd.Flags().GetString("credentials")

		s, err := dialSigner(cmd.Context())
		if err != nil {
			return err
		}
		defer s.close()

		txHash, vub, err := s.writer.Apply(s.account, name, company, website, credentials)
		return s.await(cmd.Context(), txHash, vub, err)
	},
}

var approveCmd = &cobra.Command{
	Use:   "approve <candidate>",
	Short: "Approve pending auditor application (owner only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		candidate, err := parseAccount(args[0])
		if err != nil {
			return fmt.Errorf("invalid candidate: %w", err)
		}

		s, err := dialSigner(cmd.Context())
		if err != nil {
			return err
		}
		defer s.close()

		txHash, vub, err := s.writer.Approve(candidate)
		return s.await(cmd.Context(), txHash, vub, err)
	},
}

var auditorStatusCmd = &cobra.Command{
	Use:   "auditor-status <auditor> <active|inactive|probation|suspended>",
	Short: "Change auditor status (owner only)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		auditor, err := parseAccount(args[0])
		if err != nil {
			return fmt.Errorf("invalid auditor: %w", err)
		}
		status, ok := certification.ParseAuditorStatus(args[1])
		if !ok {
			return fmt.Errorf("unknown auditor status %q", args[1])
		}

		s, err := dialSigner(cmd.Context())
		if err != nil {
			return err
		}
		defer s.close()

		txHash, vub, err := s.writer.SetAuditorStatus(auditor, status)
		return s.await(cmd.Context(), txHash, vub, err)
	},
}

var reputationCmd = &cobra.Command{
	Use:   "reputation <auditor> <score>",
	Short: "Set auditor reputation score (owner only)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		auditor, err := parseAccount(args[0])
		if err != nil {
			return fmt.Errorf("invalid auditor: %w", err)
		}
		score, err := parseBounded(args[1], 0, certification.MaxReputation)
		if err != nil {
			return fmt.Errorf("invalid reputation: %w", err)
		}

		s, err := dialSigner(cmd.Context())
		if err != nil {
			return err
		}
		defer s.close()

		txHash, vub, err := s.writer.SetReputation(auditor, score)
		return s.await(cmd.Context(), txHash, vub, err)
	},
}

var auditorCmd = &cobra.Command{
	Use:   "auditor <account>",
	Short: "Show auditor record or pending application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := parseAccount(args[0])
		if err != nil {
			return fmt.Errorf("invalid account: %w", err)
		}

		r, err := dialRemote(cmd.Context())
		if err != nil {
			return err
		}
		defer r.close()

		a, err := r.reader.GetAuditor(account)
		if err != nil {
			return fmt.Errorf("get auditor: %w", certification.WrapError(err))
		}
		if a != nil {
			printAuditor(cmd.OutOrStdout(), a)
			return nil
		}

		app, err := r.reader.GetApplication(account)
		if err != nil {
			return fmt.Errorf("get application: %w", certification.WrapError(err))
		}
		if app == nil {
			return errors.New("neither auditor nor applicant")
		}
		printApplication(cmd.OutOrStdout(), app)
		return nil
	},
}

var auditorsCmd = &cobra.Command{
	Use:   "auditors",
	Short: "List registered auditors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := dialRemote(cmd.Context())
		if err != nil {
			return err
		}
		defer r.close()

		list, err := r.reader.ListAuditors()
		if err != nil {
			return fmt.Errorf("list auditors: %w", certification.WrapError(err))
		}

		w := cmd.OutOrStdout()
		for i := range list {
			active, err := r.reader.IsActiveAuditor(list[i])
			if err != nil {
				return fmt.Errorf("check auditor %s: %w", list[i].StringLE(), certification.WrapError(err))
			}
			fmt.Fprintf(w, "%s\t%s\tactive=%t\n", formatAccount(list[i]), list[i].StringLE(), active)
		}
		return nil
	},
}

func init() {
	applyCmd.Flags().String("name", "", "auditor name")
	applyCmd.Flags().String("company", "", "company name")
	applyCmd.Flags().String("website", "", "website URL")
	applyCmd.Flags().String("credentials", "", "credentials reference")
	_ = applyCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(applyCmd, approveCmd, auditorStatusCmd, reputationCmd, auditorCmd, auditorsCmd)
}

// parseBounded parses decimal integer in [lo, hi] range.
func parseBounded(s string, lo, hi int64) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%q is not an integer", s)
	}
	if v.Cmp(big.NewInt(lo)) < 0 || v.Cmp(big.NewInt(hi)) > 0 {
		return nil, fmt.Errorf("%s is out of [%d, %d] range", v, lo, hi)
	}
	return v, nil
}
