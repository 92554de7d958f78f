package deploy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/nspcc-dev/certification-contract/common"
	"github.com/nspcc-dev/certification-contract/rpc/certification"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the registry deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// Prm groups all parameters of the registry deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy the registry to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	// The contract address is derived from this account.
	LocalAccount *wallet.Account

	// Registry owner. Local account is used if not set.
	Owner util.Uint160

	Contract CommonDeployPrm
}

// Deploy makes the registry contract from Prm available on the chain and
// returns its address.
//
// Contract is deployed if it's missing. Existing contract is updated if its
// version is lower than the version of the contract sources in this module,
// update must be signed by the registry owner. Contracts of the same or newer
// versions are left untouched.
//
// Deploy aborts by context or when transaction fails.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	localActor, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	addr := state.CreateContractHash(prm.LocalAccount.ScriptHash(), prm.Contract.NEF.Checksum, prm.Contract.Manifest.Name)
	l := prm.Logger.With(zap.Stringer("address", addr))

	_, err = prm.Blockchain.GetContractStateByHash(addr)
	if err != nil {
		if !isErrContractNotFound(err) {
			return util.Uint160{}, fmt.Errorf("get registry contract state: %w", err)
		}

		owner := prm.Owner
		if owner.Equals(util.Uint160{}) {
			owner = prm.LocalAccount.ScriptHash()
		}

		l.Info("registry contract is missing on the chain, deploying...", zap.Stringer("owner", owner))

		txHash, vub, err := management.New(localActor).Deploy(&prm.Contract.NEF, &prm.Contract.Manifest, []any{owner})
		err = awaitHalt(ctx, localActor, txHash, vub, err)
		if err != nil {
			return util.Uint160{}, fmt.Errorf("deploy registry contract: %w", err)
		}

		l.Info("registry contract successfully deployed", zap.Stringer("tx", txHash))
		return addr, nil
	}

	onChainVersion, err := certification.NewReader(localActor, addr).Version()
	if err != nil {
		return util.Uint160{}, fmt.Errorf("get version of the registry contract on the chain: %w", err)
	}

	upd, err := needsUpdate(onChainVersion, big.NewInt(common.Version))
	if err != nil {
		l.Warn("skip registry contract update", zap.Error(err))
		return addr, nil
	}
	if !upd {
		l.Info("registry contract is already of the latest version", zap.Stringer("version", onChainVersion))
		return addr, nil
	}

	bNEF, err := prm.Contract.NEF.Bytes()
	if err != nil {
		return util.Uint160{}, fmt.Errorf("encode NEF: %w", err)
	}

	jManifest, err := json.Marshal(prm.Contract.Manifest)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("encode manifest: %w", err)
	}

	l.Info("updating registry contract...",
		zap.Stringer("from", onChainVersion), zap.Int("to", common.Version))

	txHash, vub, err := certification.New(localActor, addr).Update(bNEF, jManifest, nil)
	err = awaitHalt(ctx, localActor, txHash, vub, err)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("update registry contract: %w", err)
	}

	l.Info("registry contract successfully updated", zap.Stringer("tx", txHash))
	return addr, nil
}

var errNewerVersion = errors.New("contract on the chain is newer than the local one")

// needsUpdate checks whether the contract of the on-chain version should be
// updated to the local one.
func needsUpdate(onChain, local *big.Int) (bool, error) {
	switch onChain.Cmp(local) {
	case -1:
		return true, nil
	case 0:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s > %s", errNewerVersion, onChain, local)
	}
}

func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}

// awaitHalt waits for the transaction sent by the actor to be accepted and
// checks that it has been successfully executed. Contract errors are
// translated via [certification.ErrorFromExecution].
func awaitHalt(ctx context.Context, a *actor.Actor, txHash util.Uint256, vub uint32, err error) error {
	if err != nil {
		return fmt.Errorf("send transaction: %w", err)
	}

	res, err := a.WaitAny(ctx, vub, txHash)
	if err != nil {
		return fmt.Errorf("wait for transaction %s: %w", txHash.StringLE(), err)
	}

	if res.VMState != vmstate.Halt {
		return fmt.Errorf("transaction %s failed: %w", txHash.StringLE(), certification.ErrorFromExecution(&res.Execution))
	}

	return nil
}
