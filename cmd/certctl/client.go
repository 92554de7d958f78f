package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/certification-contract/rpc/certification"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// remote groups connections to the Neo RPC server and the registry contract.
type remote struct {
	rpc      *rpcclient.Client
	contract util.Uint160
	reader   *certification.ContractReader
}

// signer extends remote with the wallet account sending transactions.
type signer struct {
	*remote
	actor   *actor.Actor
	wallet  *wallet.Wallet
	acc     *wallet.Account
	account util.Uint160
	writer  *certification.Contract
}

// dialRemote connects to the RPC server from the configuration. The
// connection must be closed by the caller.
func dialRemote(ctx context.Context) (*remote, error) {
	contract, err := parseAccount(viper.GetString(cfgContract))
	if err != nil {
		return nil, fmt.Errorf("invalid registry contract: %w", err)
	}

	timeout := viper.GetDuration(cfgTimeout)
	c, err := rpcclient.New(ctx, viper.GetString(cfgRPC), rpcclient.Options{
		DialTimeout:    timeout,
		RequestTimeout: timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	log.Debug("connected to RPC server",
		zap.String("endpoint", viper.GetString(cfgRPC)), zap.Stringer("contract", contract))

	return &remote{
		rpc:      c,
		contract: contract,
		reader:   certification.NewReader(invoker.New(c, nil), contract),
	}, nil
}

func (r *remote) close() {
	r.rpc.Close()
}

// dialSigner connects to the RPC server and opens the wallet account from the
// configuration.
func dialSigner(ctx context.Context) (*signer, error) {
	w, acc, err := openAccount(viper.GetString(cfgWallet), viper.GetString(cfgAddress), viper.GetString(cfgPassword))
	if err != nil {
		return nil, err
	}

	r, err := dialRemote(ctx)
	if err != nil {
		w.Close()
		return nil, err
	}

	act, err := actor.NewSimple(r.rpc, acc)
	if err != nil {
		r.close()
		w.Close()
		return nil, fmt.Errorf("init actor: %w", err)
	}

	return &signer{
		remote:  r,
		actor:   act,
		wallet:  w,
		acc:     acc,
		account: acc.ScriptHash(),
		writer:  certification.New(act, r.contract),
	}, nil
}

// close destroys decrypted keys of the wallet and closes the connection.
func (s *signer) close() {
	s.wallet.Close()
	s.remote.close()
}

// openAccount reads the wallet and decrypts the account with the given
// address or the default one. The wallet must be closed by the caller once
// the account is no longer needed, closing destroys the decrypted key.
func openAccount(walletPath, addr, password string) (*wallet.Wallet, *wallet.Account, error) {
	if walletPath == "" {
		return nil, nil, errors.New("wallet is required to send transactions")
	}

	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open wallet: %w", err)
	}

	acc, err := findAccount(w, addr)
	if err == nil {
		err = acc.Decrypt(password, w.Scrypt)
		if err != nil {
			err = fmt.Errorf("decrypt account %s: %w", acc.Address, err)
		}
	}
	if err != nil {
		w.Close()
		return nil, nil, err
	}

	return w, acc, nil
}

func findAccount(w *wallet.Wallet, addr string) (*wallet.Account, error) {
	if addr == "" {
		acc := w.GetAccount(w.GetChangeAddress())
		if acc == nil {
			return nil, errors.New("wallet has no default account")
		}
		return acc, nil
	}

	h, err := address.StringToUint160(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid account address: %w", err)
	}
	acc := w.GetAccount(h)
	if acc == nil {
		return nil, fmt.Errorf("account %s is missing in the wallet", addr)
	}
	return acc, nil
}

// await waits for the sent transaction and translates its failure into
// registry errors.
func (s *signer) await(ctx context.Context, txHash util.Uint256, vub uint32, err error) error {
	if err != nil {
		return fmt.Errorf("send transaction: %w", certification.WrapError(err))
	}

	log.Info("transaction sent", zap.Stringer("hash", txHash), zap.Uint32("vub", vub))

	ctx, cancel := context.WithTimeout(ctx, viper.GetDuration(cfgTimeout))
	defer cancel()

	res, err := s.actor.WaitAny(ctx, vub, txHash)
	if err != nil {
		return fmt.Errorf("await transaction %s: %w", txHash.StringLE(), err)
	}

	if res.VMState != vmstate.Halt {
		return fmt.Errorf("transaction %s failed: %w", txHash.StringLE(), certification.ErrorFromExecution(&res.Execution))
	}

	log.Info("transaction accepted", zap.Stringer("hash", txHash), zap.Int64("gas", res.GasConsumed))
	return nil
}

// parseAccount accepts Neo address or script hash in LE hex form (with
// optional 0x prefix).
func parseAccount(s string) (util.Uint160, error) {
	if s == "" {
		return util.Uint160{}, errors.New("empty value")
	}
	if h, err := address.StringToUint160(s); err == nil {
		return h, nil
	}
	h, err := util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return util.Uint160{}, fmt.Errorf("%q is neither address nor script hash", s)
	}
	return h, nil
}
