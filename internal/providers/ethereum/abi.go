package ethereum

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// greetingCardABI covers the views and mutations of the greeting-card ERC721 contract used here
const greetingCardABI = `[
	{"constant":true,"inputs":[],"name":"totalSupply","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"lastTokenId","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"getTokenMetadata","outputs":[{"name":"","type":"tuple","components":[
		{"name":"name","type":"string"},
		{"name":"message","type":"string"},
		{"name":"festival","type":"string"},
		{"name":"imageURI","type":"string"},
		{"name":"sender","type":"address"},
		{"name":"createdAt","type":"uint256"}
	]}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"ownerOf","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"getApproved","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"name":"transferFrom","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"name":"approve","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"tokenId","type":"uint256"}],"name":"burn","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

// onchainMetadata mirrors the getTokenMetadata tuple
type onchainMetadata struct {
	Name      string
	Message   string
	Festival  string
	ImageURI  string
	Sender    common.Address
	CreatedAt *big.Int
}

// parseGreetingCardABI parses the contract ABI
func parseGreetingCardABI() (abi.ABI, error) {
	parsed, err := abi.JSON(strings.NewReader(greetingCardABI))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse ABI: %w", err)
	}
	return parsed, nil
}
