package contract

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// DefaultAddress is the deployment of the app registry used by the public
// store front.
var DefaultAddress = common.HexToAddress("0x2EdB874129E611A225351C3D629Fa46a0B2FCC2E")

// Project is a registry entry as returned by the contract.
type Project = CloverOsProjectProject

// Registry is the subset of the generated binding the registry client uses.
type Registry interface {
	Admin(opts *bind.CallOpts) (common.Address, error)
	GetProjectCount(opts *bind.CallOpts) (*big.Int, error)
	GetProjects(opts *bind.CallOpts, start *big.Int, end *big.Int) ([]Project, error)
	LatestUpdateTime(opts *bind.CallOpts) (*big.Int, error)

	AddProject(opts *bind.TransactOpts, name string, desc string, source string, icon string) (*types.Transaction, error)
	UpdateProject(opts *bind.TransactOpts, id *big.Int, name string, desc string, source string, icon string) (*types.Transaction, error)
	UpdateProjectStatusByAdmin(opts *bind.TransactOpts, id *big.Int, status uint8) (*types.Transaction, error)
	UpdateProjectStatusByOwner(opts *bind.TransactOpts, id *big.Int, status uint8) (*types.Transaction, error)
	RemoveProject(opts *bind.TransactOpts, id *big.Int) (*types.Transaction, error)
}

var _ Registry = (*CloverOsProject)(nil)

// New binds the registry at address.
func New(address common.Address, backend bind.ContractBackend) (Registry, error) {
	return NewCloverOsProject(address, backend)
}

func RegistryMetaData() (*abi.ABI, error) {
	return CloverOsProjectMetaData.GetAbi()
}

// ProjectFromReceipt returns the registry entry emitted by the named event
// (AddProject, UpdateProject, ProjectStatusChanged or RemovedProject) in the
// receipt logs.
func ProjectFromReceipt(receipt *types.Receipt, eventName string) (Project, error) {
	registryABI, err := RegistryMetaData()
	if err != nil {
		return Project{}, fmt.Errorf("failed to get registry ABI: %w", err)
	}

	event, exists := registryABI.Events[eventName]
	if !exists {
		return Project{}, fmt.Errorf("%s event not found in ABI", eventName)
	}

	for _, vLog := range receipt.Logs {
		if len(vLog.Topics) == 0 || vLog.Topics[0] != event.ID {
			continue
		}
		var out struct {
			Info Project
		}
		if err := registryABI.UnpackIntoInterface(&out, eventName, vLog.Data); err != nil {
			return Project{}, fmt.Errorf("failed to unpack %s log data: %w", eventName, err)
		}
		return out.Info, nil
	}

	return Project{}, fmt.Errorf("%s event not found in receipt", eventName)
}
