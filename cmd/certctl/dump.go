package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// storageDump is a JSON snapshot of the registry contract at some height.
type storageDump struct {
	Block    uint32         `json:"block"`
	Contract state.Contract `json:"contract"`
	Items    []storageItem  `json:"storage"`
}

type storageItem struct {
	Kind  string `json:"kind"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Save registry contract state and storage into JSON file",
	Long: `Save registry contract state and storage into JSON file.

Storage is read from the state root of the penult block, so the RPC server
must have StateRootInHeader or state service enabled.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := dialRemote(cmd.Context())
		if err != nil {
			return err
		}
		defer r.close()

		d, err := r.dump()
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return fmt.Errorf("encode dump: %w", err)
		}

		err = os.WriteFile(args[0], data, 0o600)
		if err != nil {
			return fmt.Errorf("write dump: %w", err)
		}

		log.Info("registry storage is successfully dumped",
			zap.String("file", args[0]), zap.Uint32("block", d.Block), zap.Int("items", len(d.Items)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func (r *remote) dump() (*storageDump, error) {
	ctr, err := r.rpc.GetContractStateByHash(r.contract)
	if err != nil {
		return nil, fmt.Errorf("get state of the registry contract '%s': %w", r.contract.StringLE(), err)
	}

	d := &storageDump{Contract: *ctr}

	d.Block, err = r.iterateContractStorage(r.contract, func(key, value []byte) error {
		d.Items = append(d.Items, storageItem{
			Kind:  storageKind(key),
			Key:   base64.StdEncoding.EncodeToString(key),
			Value: base64.StdEncoding.EncodeToString(value),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return d, nil
}

// iterateContractStorage iterates over all storage items of the contract at
// the penult block and passes them into f. Returns height of the used state.
// iterateContractStorage breaks on any f's error and returns it.
func (r *remote) iterateContractStorage(contract util.Uint160, f func(key, value []byte) error) (uint32, error) {
	nLatestBlock, err := r.rpc.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get number of the latest block: %w", err)
	}
	if nLatestBlock < 2 {
		return 0, fmt.Errorf("chain is too short: %d blocks", nLatestBlock)
	}

	height := nLatestBlock - 1

	stateRoot, err := r.rpc.GetStateRootByHeight(height)
	if err != nil {
		return 0, fmt.Errorf("get state root at penult block #%d: %w", height, err)
	}

	var start []byte

	for {
		res, err := r.rpc.FindStates(stateRoot.Root, contract, nil, start, nil)
		if err != nil {
			return 0, fmt.Errorf("get historical storage items of the contract at state root '%s': %w", stateRoot.Root, err)
		}

		for i := range res.Results {
			err = f(res.Results[i].Key, res.Results[i].Value)
			if err != nil {
				return 0, err
			}
		}

		if !res.Truncated || len(res.Results) == 0 {
			return height, nil
		}

		start = res.Results[len(res.Results)-1].Key
	}
}

// storageKind names registry record type stored under the key.
func storageKind(key []byte) string {
	switch string(key) {
	case "owner":
		return "owner"
	case "totalAuditors", "totalCertifications", "totalCertifiedContracts":
		return "statistics"
	}
	if len(key) == 0 {
		return "unknown"
	}
	switch key[0] {
	case 'p':
		return "application"
	case 'a':
		return "auditor"
	case 'r':
		return "request"
	case 'c':
		return "certification"
	case 'h':
		return "history"
	case 'n':
		return "history counter"
	default:
		return "unknown"
	}
}
