package testutil

import (
	crand "crypto/rand"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

func RandomBytes(size int) []byte {
	bytes := make([]byte, size)
	_, _ = crand.Read(bytes)
	return bytes
}

func RandomCID() cid.Cid {
	bytes := RandomBytes(10)
	c, _ := cid.Prefix{
		Version:  1,
		Codec:    cid.Raw,
		MhType:   mh.SHA2_256,
		MhLength: -1,
	}.Sum(bytes)
	return c
}

func RandomMultihash() mh.Multihash {
	digest, _ := mh.Sum(RandomBytes(10), mh.SHA2_256, -1)
	return digest
}

func RandomAddress() common.Address {
	return common.BytesToAddress(RandomBytes(common.AddressLength))
}
