// Instantiate message of the margined-pricefeed contract.
//
//    instantiateMsg, err := UnmarshalInstantiateMsg(bytes)
//    bytes, err = instantiateMsg.Marshal()

package pricefeed

import "encoding/json"

func UnmarshalInstantiateMsg(data []byte) (InstantiateMsg, error) {
	var r InstantiateMsg
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *InstantiateMsg) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

type InstantiateMsg struct {
	// Token precision of the prices appended to the feed, e.g. 6
	Decimals int `json:"decimals" yaml:"decimals" toml:"decimals"`
	// Address of the oracle hub the feed reads from, unset until it is deployed
	OracleHubContract *string `json:"oracle_hub_contract,omitempty" yaml:"oracle_hub_contract,omitempty" toml:"oracle_hub_contract,omitempty"`
}
