package contract

import (
	"context"
	"math/big"
	"testing"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

// fakeCaller answers eth_call by ABI encoding canned results for each method.
type fakeCaller struct {
	t       *testing.T
	results map[string][]interface{}
	calls   []string
}

func (f *fakeCaller) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x1}, nil
}

func (f *fakeCaller) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	registryABI, err := RegistryMetaData()
	require.NoError(f.t, err)
	method, err := registryABI.MethodById(call.Data[:4])
	require.NoError(f.t, err)
	f.calls = append(f.calls, method.Name)
	return method.Outputs.Pack(f.results[method.Name]...)
}

func testProject(id int64) Project {
	return Project{
		Name:       "Foo",
		Desc:       "QmDesc",
		Source:     "QmSource",
		Icon:       "QmIcon",
		Version:    big.NewInt(2),
		Id:         big.NewInt(id),
		Owner:      common.HexToAddress("0x6170dE2b09b404776197485F3dc6c968Ef948505"),
		Status:     1,
		CreateTime: big.NewInt(1700000000),
		UpdateTime: big.NewInt(1700000100),
	}
}

func TestCallerDecodesResults(t *testing.T) {
	admin := common.HexToAddress("0x6170dE2b09b404776197485F3dc6c968Ef948506")
	caller := &fakeCaller{t: t, results: map[string][]interface{}{
		"admin":            {admin},
		"latestUpdateTime": {big.NewInt(1700000100)},
		"getProjectCount":  {big.NewInt(2)},
		"getProjects":      {[]Project{testProject(1), testProject(2)}},
	}}

	reg, err := NewCloverOsProjectCaller(DefaultAddress, caller)
	require.NoError(t, err)
	opts := &bind.CallOpts{Context: context.Background()}

	gotAdmin, err := reg.Admin(opts)
	require.NoError(t, err)
	require.Equal(t, admin, gotAdmin)

	ts, err := reg.LatestUpdateTime(opts)
	require.NoError(t, err)
	require.Equal(t, int64(1700000100), ts.Int64())

	count, err := reg.GetProjectCount(opts)
	require.NoError(t, err)
	require.Equal(t, int64(2), count.Int64())

	projects, err := reg.GetProjects(opts, big.NewInt(0), big.NewInt(500))
	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.Equal(t, "Foo", projects[0].Name)
	require.Equal(t, int64(2), projects[1].Id.Int64())
	require.Equal(t, uint8(1), projects[1].Status)

	require.Equal(t, []string{"admin", "latestUpdateTime", "getProjectCount", "getProjects"}, caller.calls)
}

func TestProjectFromReceipt(t *testing.T) {
	registryABI, err := RegistryMetaData()
	require.NoError(t, err)

	event := registryABI.Events["AddProject"]
	data, err := event.Inputs.NonIndexed().Pack(testProject(7))
	require.NoError(t, err)

	owner := testProject(7).Owner
	receipt := &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{
			{Topics: []common.Hash{common.HexToHash("0x01")}},
			{Topics: []common.Hash{event.ID, common.BytesToHash(owner.Bytes())}, Data: data},
		},
	}

	p, err := ProjectFromReceipt(receipt, "AddProject")
	require.NoError(t, err)
	require.Equal(t, int64(7), p.Id.Int64())
	require.Equal(t, "QmIcon", p.Icon)

	_, err = ProjectFromReceipt(receipt, "RemovedProject")
	require.Error(t, err)

	_, err = ProjectFromReceipt(receipt, "NoSuchEvent")
	require.Error(t, err)
}
