/*
Package contracts provides access to compiled Certification Registry contract.

Compiled contract is a pair of NEF and manifest files located in one directory.
It can be read from any fs.FS or produced from Go sources with Compile.
*/
package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/nspcc-dev/neo-go/cli/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/compiler"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

const (
	// CertificationDir is the directory of the registry contract sources
	// relative to the contracts package.
	CertificationDir = "certification"

	nefName      = "contract.nef"
	manifestName = "manifest.json"
	configName   = "config.yml"
)

// Contract groups information about Neo contract.
type Contract struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

var (
	errInvalidNEF      = errors.New("invalid NEF")
	errInvalidManifest = errors.New("invalid manifest")
)

// Hash returns the hash the contract gets when deployed by the sender.
func (c Contract) Hash(sender util.Uint160) util.Uint160 {
	return state.CreateContractHash(sender, c.NEF.Checksum, c.Manifest.Name)
}

// ReadDir reads compiled contract from the local directory.
func ReadDir(dir string) (Contract, error) {
	return Read(os.DirFS(dir), ".")
}

// Read reads compiled contract from the given directory of the file system.
func Read(fsys fs.FS, dir string) (Contract, error) {
	c, err := readContractFromDir(fsys, dir)
	if err != nil {
		return c, fmt.Errorf("read contract %s: %w", dir, err)
	}
	return c, nil
}

func readContractFromDir(fsys fs.FS, dir string) (Contract, error) {
	var c Contract

	// fs.FS uses "/" even on Windows, so filepath.Join() is not applicable.
	fNEF, err := fsys.Open(path.Join(dir, nefName))
	if err != nil {
		return c, fmt.Errorf("open NEF: %w", err)
	}
	defer fNEF.Close()

	fManifest, err := fsys.Open(path.Join(dir, manifestName))
	if err != nil {
		return c, fmt.Errorf("open manifest: %w", err)
	}
	defer fManifest.Close()

	bReader := io.NewBinReaderFromIO(fNEF)
	c.NEF.DecodeBinary(bReader)
	if bReader.Err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidNEF, bReader.Err)
	}

	err = json.NewDecoder(fManifest).Decode(&c.Manifest)
	if err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidManifest, err)
	}

	return c, nil
}

// Compile compiles contract sources located in srcDir. Contract configuration
// is read from config.yml file in the same directory.
func Compile(srcDir string) (Contract, error) {
	var c Contract

	ne, di, err := compiler.CompileWithOptions(srcDir, nil, nil)
	if err != nil {
		return c, fmt.Errorf("compile: %w", err)
	}

	conf, err := smartcontract.ParseContractConfig(path.Join(srcDir, configName))
	if err != nil {
		return c, fmt.Errorf("parse contract config: %w", err)
	}

	o := &compiler.Options{}
	o.Name = conf.Name
	o.ContractEvents = conf.Events
	o.DeclaredNamedTypes = conf.NamedTypes
	o.ContractSupportedStandards = conf.SupportedStandards
	o.Permissions = make([]manifest.Permission, len(conf.Permissions))
	for i := range conf.Permissions {
		o.Permissions[i] = manifest.Permission(conf.Permissions[i])
	}
	o.SafeMethods = conf.SafeMethods
	m, err := compiler.CreateManifest(di, o)
	if err != nil {
		return c, fmt.Errorf("create manifest: %w", err)
	}

	c.NEF = *ne
	c.Manifest = *m
	return c, nil
}

// Write stores compiled contract into the directory, so it can be read back
// with ReadDir.
func Write(dir string, c Contract) error {
	bNEF, err := c.NEF.Bytes()
	if err != nil {
		return fmt.Errorf("encode NEF: %w", err)
	}

	jManifest, err := json.Marshal(c.Manifest)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	err = os.MkdirAll(dir, 0o755)
	if err != nil {
		return err
	}

	err = os.WriteFile(path.Join(dir, nefName), bNEF, 0o644)
	if err != nil {
		return fmt.Errorf("write NEF: %w", err)
	}

	err = os.WriteFile(path.Join(dir, manifestName), jManifest, 0o644)
	if err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}
