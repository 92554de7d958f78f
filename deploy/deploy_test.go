package deploy

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"path/filepath"
	"testing"
	"time"

	"github.com/nspcc-dev/certification-contract/contracts"
	"github.com/nspcc-dev/certification-contract/rpc/certification"
	"github.com/nspcc-dev/neo-go/pkg/config"
	"github.com/nspcc-dev/neo-go/pkg/config/netmode"
	"github.com/nspcc-dev/neo-go/pkg/consensus"
	"github.com/nspcc-dev/neo-go/pkg/core"
	"github.com/nspcc-dev/neo-go/pkg/core/storage"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/network"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/services/rpcsrv"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNeedsUpdate(t *testing.T) {
	for _, tc := range []struct {
		onChain, local int64
		upd            bool
		fail           bool
	}{
		{onChain: 0, local: 1_000, upd: true},
		{onChain: 1_000, local: 1_000},
		{onChain: 1_000, local: 1_001, upd: true},
		{onChain: 2_000, local: 1_000, fail: true},
	} {
		upd, err := needsUpdate(big.NewInt(tc.onChain), big.NewInt(tc.local))
		if tc.fail {
			require.ErrorIs(t, err, errNewerVersion, tc)
			continue
		}
		require.NoError(t, err, tc)
		require.Equal(t, tc.upd, upd, tc)
	}
}

func TestIsErrContractNotFound(t *testing.T) {
	require.True(t, isErrContractNotFound(errors.New("Unknown contract")))
	require.True(t, isErrContractNotFound(fmt.Errorf("call failed: %w", errors.New("-32608: Unknown contract"))))
	require.False(t, isErrContractNotFound(errors.New("connection refused")))
}

func TestRegistryDeploy(t *testing.T) {
	validatorAcc, err := wallet.NewAccount()
	require.NoError(t, err)

	var validatorMulti = new(wallet.Account)
	*validatorMulti = *validatorAcc
	err = validatorMulti.ConvertMultisig(1, []*keys.PublicKey{validatorAcc.PublicKey()})
	require.NoError(t, err)

	walletPath := filepath.Join(t.TempDir(), "wallet.json")
	wlt, err := wallet.NewWallet(walletPath)
	require.NoError(t, err)

	err = validatorAcc.Encrypt("", wlt.Scrypt)
	require.NoError(t, err)
	wlt.AddAccount(validatorAcc)
	require.NoError(t, wlt.Save())

	var (
		cfg = config.Config{
			ApplicationConfiguration: config.ApplicationConfiguration{
				RPC: config.RPC{
					BasicService: config.BasicService{
						Enabled: true,
					},
					MaxGasInvoke: fixedn.Fixed8FromInt64(50),
				},
				Consensus: config.Consensus{
					Enabled: true,
					UnlockWallet: config.Wallet{
						Path:     walletPath,
						Password: "",
					},
				},
			},
			ProtocolConfiguration: config.ProtocolConfiguration{
				Magic:                       netmode.UnitTestNet,
				MaxTraceableBlocks:          1000,
				MaxValidUntilBlockIncrement: 1000 / 2,
				TimePerBlock:                50 * time.Millisecond,
				StandbyCommittee:            []string{hex.EncodeToString(validatorAcc.PublicKey().Bytes())},
				ValidatorsCount:             1,
				VerifyTransactions:          true,
			},
		}
		logger = zaptest.NewLogger(t)
		store  = storage.NewMemoryStore()
	)

	bc, err := core.NewBlockchain(store, config.Blockchain{ProtocolConfiguration: cfg.ProtocolConfiguration}, logger)
	require.NoError(t, err)
	go bc.Run()
	t.Cleanup(bc.Close)

	serverConfig, err := network.NewServerConfig(config.Config{ProtocolConfiguration: cfg.ProtocolConfiguration})
	require.NoError(t, err)
	serverConfig.UserAgent = fmt.Sprintf(config.UserAgentFormat, "something")
	netSrv, err := network.NewServer(serverConfig, bc, bc.GetStateSyncModule(), logger)
	require.NoError(t, err)
	cons, err := consensus.NewService(consensus.Config{
		Logger:                logger,
		Broadcast:             netSrv.BroadcastExtensible,
		Chain:                 bc,
		BlockQueue:            netSrv.GetBlockQueue(),
		ProtocolConfiguration: cfg.ProtocolConfiguration,
		RequestTx:             netSrv.RequestTx,
		StopTxFlow:            netSrv.StopTxFlow,
		TimePerBlock:          cfg.ProtocolConfiguration.TimePerBlock,
		Wallet:                cfg.ApplicationConfiguration.Consensus.UnlockWallet,
	})
	require.NoError(t, err)
	netSrv.AddConsensusService(cons, cons.OnPayload, cons.OnTransaction)
	netSrv.Start()

	errCh := make(chan error, 2)
	rpcServer := rpcsrv.New(bc, cfg.ApplicationConfiguration.RPC, netSrv, nil, logger, errCh)
	rpcServer.Start()
	t.Cleanup(rpcServer.Shutdown)

	rpcClient, err := rpcclient.NewInternal(context.TODO(), rpcServer.RegisterLocal)
	require.NoError(t, err)
	require.NoError(t, rpcClient.Init())

	ctr, err := contracts.Compile(filepath.Join("..", "contracts", contracts.CertificationDir))
	require.NoError(t, err)

	owner := util.Uint160{1, 2, 3}
	deployPrm := Prm{
		Logger:       logger,
		Blockchain:   rpcClient,
		LocalAccount: validatorMulti,
		Owner:        owner,
		Contract: CommonDeployPrm{
			NEF:      ctr.NEF,
			Manifest: ctr.Manifest,
		},
	}

	ctx, cancel := context.WithTimeout(context.TODO(), 2*time.Minute)
	defer cancel()

	addr, err := Deploy(ctx, deployPrm)
	require.NoError(t, err)
	require.Equal(t, ctr.Hash(validatorMulti.ScriptHash()), addr)

	reader := certification.NewReader(invoker.New(rpcClient, nil), addr)
	onChainOwner, err := reader.Owner()
	require.NoError(t, err)
	require.Equal(t, owner, onChainOwner)

	stats, err := reader.GetStatistics()
	require.NoError(t, err)
	require.Zero(t, stats.TotalAuditors.Sign())

	// second run finds the contract of the same version
	again, err := Deploy(ctx, deployPrm)
	require.NoError(t, err)
	require.Equal(t, addr, again)
}
