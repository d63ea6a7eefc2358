package registry

// Asset is a cw20 token or a native denom, exactly one of the two is set.
type Asset struct {
	Token       *TokenAsset  `json:"token,omitempty" yaml:"token,omitempty" toml:"token,omitempty"`
	NativeToken *NativeAsset `json:"native_token,omitempty" yaml:"native_token,omitempty" toml:"native_token,omitempty"`
}

type TokenAsset struct {
	ContractAddr string `json:"contract_addr" yaml:"contract_addr" toml:"contract_addr"`
}

type NativeAsset struct {
	Denom string `json:"denom" yaml:"denom" toml:"denom"`
}

func (a Asset) String() string {
	switch {
	case a.Token != nil:
		return "cw20:" + a.Token.ContractAddr
	case a.NativeToken != nil:
		return "native:" + a.NativeToken.Denom
	default:
		return "<empty>"
	}
}

func (a Asset) clone() Asset {
	out := Asset{}
	if a.Token != nil {
		token := *a.Token
		out.Token = &token
	}
	if a.NativeToken != nil {
		native := *a.NativeToken
		out.NativeToken = &native
	}
	return out
}
