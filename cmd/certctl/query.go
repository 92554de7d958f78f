package main

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/certification-contract/rpc/certification"
	"github.com/spf13/cobra"
)

var errNotFound = errors.New("not found")

var certificationCmd = &cobra.Command{
	Use:   "certification <artifact> <version>",
	Short: "Show live certification of the contract version",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		artifact, ver, err := artifactVersion(args)
		if err != nil {
			return err
		}

		r, err := dialRemote(cmd.Context())
		if err != nil {
			return err
		}
		defer r.close()

		c, err := r.reader.GetCertification(artifact, ver)
		if err != nil {
			return fmt.Errorf("get certification: %w", certification.WrapError(err))
		}
		if c == nil {
			return fmt.Errorf("certification: %w", errNotFound)
		}
		printCertification(cmd.OutOrStdout(), c)
		return nil
	},
}

var requestInfoCmd = &cobra.Command{
	Use:   "request-info <artifact> <version>",
	Short: "Show certification request of the contract version",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		artifact, ver, err := artifactVersion(args)
		if err != nil {
			return err
		}

		r, err := dialRemote(cmd.Context())
		if err != nil {
			return err
		}
		defer r.close()

		req, err := r.reader.GetRequest(artifact, ver)
		if err != nil {
			return fmt.Errorf("get request: %w", certification.WrapError(err))
		}
		if req == nil {
			return fmt.Errorf("request: %w", errNotFound)
		}
		printRequest(cmd.OutOrStdout(), req)
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <artifact> <version>",
	Short: "Show verification summary of the contract version",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		artifact, ver, err := artifactVersion(args)
		if err != nil {
			return err
		}

		r, err := dialRemote(cmd.Context())
		if err != nil {
			return err
		}
		defer r.close()

		info, err := r.reader.GetVerificationInfo(artifact, ver)
		if err != nil {
			return fmt.Errorf("get verification info: %w", certification.WrapError(err))
		}
		printVerificationInfo(cmd.OutOrStdout(), info)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history <artifact>",
	Short: "Show certification history of the contract",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		artifact, err := parseAccount(args[0])
		if err != nil {
			return fmt.Errorf("invalid artifact: %w", err)
		}

		r, err := dialRemote(cmd.Context())
		if err != nil {
			return err
		}
		defer r.close()

		n, err := r.reader.GetHistoryCount(artifact)
		if err != nil {
			return fmt.Errorf("get history count: %w", certification.WrapError(err))
		}

		w := cmd.OutOrStdout()
		for i := int64(1); i <= n.Int64(); i++ {
			e, err := r.reader.GetHistoryEntry(artifact, big.NewInt(i))
			if err != nil {
				return fmt.Errorf("get history entry #%d: %w", i, certification.WrapError(err))
			}
			if e == nil {
				return fmt.Errorf("history entry #%d: %w", i, errNotFound)
			}
			printHistoryEntry(w, i, e)
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show registry statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := dialRemote(cmd.Context())
		if err != nil {
			return err
		}
		defer r.close()

		st, err := r.reader.GetStatistics()
		if err != nil {
			return fmt.Errorf("get statistics: %w", certification.WrapError(err))
		}
		printStatistics(cmd.OutOrStdout(), st)
		return nil
	},
}

var ownerCmd = &cobra.Command{
	Use:   "owner",
	Short: "Show registry owner and contract version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := dialRemote(cmd.Context())
		if err != nil {
			return err
		}
		defer r.close()

		owner, err := r.reader.Owner()
		if err != nil {
			return fmt.Errorf("get owner: %w", certification.WrapError(err))
		}
		ver, err := r.reader.Version()
		if err != nil {
			return fmt.Errorf("get version: %w", certification.WrapError(err))
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Owner:   %s\n", formatAccount(owner))
		fmt.Fprintf(w, "Version: %s\n", formatVersion(ver))
		return nil
	},
}

var transferOwnershipCmd = &cobra.Command{
	Use:   "transfer-ownership <new-owner>",
	Short: "Pass registry ownership to another account (owner only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		newOwner, err := parseAccount(args[0])
		if err != nil {
			return fmt.Errorf("invalid new owner: %w", err)
		}

		s, err := dialSigner(cmd.Context())
		if err != nil {
			return err
		}
		defer s.close()

		txHash, vub, err := s.writer.TransferOwnership(newOwner)
		return s.await(cmd.Context(), txHash, vub, err)
	},
}

func init() {
	rootCmd.AddCommand(certificationCmd, requestInfoCmd, infoCmd, historyCmd, statsCmd, ownerCmd, transferOwnershipCmd)
}
