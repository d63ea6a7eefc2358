package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratedTypes(t *testing.T) {
	msg := InstantiateMsg{
		Decimals:               6,
		InitialMarginRatio:     "62500",
		MaintenanceMarginRatio: "62500",
		LiquidationFee:         "12500",
	}

	msgBytes, err := msg.Marshal()
	assert.NoError(t, err)
	// unresolved addresses are left out of the message
	assert.Equal(t, `{"decimals":6,"initial_margin_ratio":"62500","maintenance_margin_ratio":"62500","liquidation_fee":"12500"}`, string(msgBytes))
}
