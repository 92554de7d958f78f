package main

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/certification-contract/contracts"
	"github.com/nspcc-dev/certification-contract/deploy"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy the registry contract or update it to the local version",
	Long: `Deploy the registry contract or update it to the local version.

Contract is either compiled from sources (--src) or read from the directory
with compiled contract.nef and manifest.json (--dir). Contract address is
derived from the wallet account, so the same account must be used for
updates. Update must be signed by the registry owner.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, _ := cmd.Flags().GetString("src")
		dir, _ := cmd.Flags().GetString("dir")
		ownerStr, _ := cmd.Flags().GetString("owner")

		c, err := loadContract(src, dir)
		if err != nil {
			return err
		}

		var owner util.Uint160
		if ownerStr != "" {
			owner, err = parseAccount(ownerStr)
			if err != nil {
				return fmt.Errorf("invalid owner: %w", err)
			}
		}

		s, err := dialSigner(cmd.Context())
		if err != nil {
			return err
		}
		defer s.close()

		addr, err := deploy.Deploy(cmd.Context(), deploy.Prm{
			Logger:       log,
			Blockchain:   s.rpc,
			LocalAccount: s.acc,
			Owner:        owner,
			Contract: deploy.CommonDeployPrm{
				NEF:      c.NEF,
				Manifest: c.Manifest,
			},
		})
		if err != nil {
			return err
		}

		log.Info("registry contract is ready", zap.Stringer("address", addr))
		fmt.Fprintln(cmd.OutOrStdout(), addr.StringLE())
		return nil
	},
}

var compileCmd = &cobra.Command{
	Use:   "compile <src> <out>",
	Short: "Compile the registry contract into NEF and manifest files",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := contracts.Compile(args[0])
		if err != nil {
			return err
		}
		return contracts.Write(args[1], c)
	},
}

func init() {
	deployCmd.Flags().String("src", "", "directory with contract sources and config.yml")
	deployCmd.Flags().String("dir", "", "directory with compiled contract")
	deployCmd.Flags().String("owner", "", "registry owner (wallet account if empty)")
	deployCmd.MarkFlagsMutuallyExclusive("src", "dir")

	rootCmd.AddCommand(deployCmd, compileCmd)
}

func loadContract(src, dir string) (contracts.Contract, error) {
	switch {
	case src != "":
		return contracts.Compile(src)
	case dir != "":
		return contracts.ReadDir(dir)
	default:
		return contracts.Contract{}, errors.New("either --src or --dir must be set")
	}
}
