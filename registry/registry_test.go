package registry

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RegistryTestSuite struct {
	suite.Suite
	registry *Registry
}

func (s *RegistryTestSuite) SetupSuite() {
	r, err := Default()
	s.Require().NoError(err)
	s.registry = r
}

func TestRegistry(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) Test_Names() {
	s.Equal([]string{JunoTestnet, Local, OsmoTestnet}, s.registry.Names())
	s.Equal(3, s.registry.Len())
	s.True(s.registry.Has(Local))
	s.False(s.registry.Has("mainnet"))
}

func (s *RegistryTestSuite) Test_Get_EveryEnvironment() {
	for _, name := range s.registry.Names() {
		cfg, err := s.registry.Get(name)
		s.Require().NoError(err, name)

		s.NotNil(cfg.InitialAssets, name)
		s.Empty(cfg.InitialAssets, name)
		s.Equal(DefaultDecimals, cfg.PriceFeedInitMsg.Decimals, name)
		s.Equal(cfg.PriceFeedInitMsg.Decimals, cfg.EngineInitMsg.Decimals, name)
		s.Equal(cfg.PriceFeedInitMsg.Decimals, cfg.VammInitMsg.Decimals, name)
		s.Equal(int64(3_600), cfg.VammInitMsg.FundingPeriod, name)

		for _, field := range AddressFields() {
			_, ok := cfg.Address(field)
			s.False(ok, "%s %s", name, field)
		}
		s.NoError(cfg.ValidateTemplate(name))
	}
}

func (s *RegistryTestSuite) Test_Get_NotFound() {
	_, err := s.registry.Get("nonexistent")
	s.Require().Error(err)
	s.True(errors.Is(err, ErrConfigNotFound))
	s.False(errors.Is(err, ErrConfigInvalid))
	s.Equal(`config not found: "nonexistent"`, err.Error())
}

func (s *RegistryTestSuite) Test_Get_ExactName() {
	for _, name := range []string{" local\n", "local ", "LOCAL", "Local"} {
		_, err := s.registry.Get(name)
		s.ErrorIs(err, ErrConfigNotFound, "%q", name)
		s.False(s.registry.Has(name), "%q", name)
	}
	s.True(s.registry.Has(Local))
}

func (s *RegistryTestSuite) Test_Get_ReturnsCopy() {
	cfg, err := s.registry.Get(JunoTestnet)
	s.Require().NoError(err)

	fee := "addr3"
	cfg.EngineInitMsg.FeePool = &fee
	cfg.EngineInitMsg.InitialMarginRatio = "1"
	cfg.InitialAssets = append(cfg.InitialAssets, Asset{NativeToken: &NativeAsset{Denom: "ujuno"}})

	again, err := s.registry.Get(JunoTestnet)
	s.Require().NoError(err)
	s.Nil(again.EngineInitMsg.FeePool)
	s.Equal("62500", again.EngineInitMsg.InitialMarginRatio)
	s.Empty(again.InitialAssets)
}

func (s *RegistryTestSuite) Test_Records() {
	tests := []struct {
		env                    string
		initialMarginRatio     string
		maintenanceMarginRatio string
		liquidationFee         string
		quoteAsset             string
		baseAsset              string
		quoteReserve           string
		baseReserve            string
		tollRatio              string
	}{
		{JunoTestnet, "62500", "62500", "12500", "mUSD", "juno", "2800000000", "1000000000", "1250"},
		{OsmoTestnet, "62500", "62500", "12500", "mUSD", "osmo", "1640000000", "1000000000", "1250"},
		{Local, "50000", "50000", "50000", "USDC", "ETH", "1200000000000", "1000000000", "0"},
	}

	for _, tt := range tests {
		cfg, err := s.registry.Get(tt.env)
		s.Require().NoError(err)

		s.Equal(tt.initialMarginRatio, cfg.EngineInitMsg.InitialMarginRatio, tt.env)
		s.Equal(tt.maintenanceMarginRatio, cfg.EngineInitMsg.MaintenanceMarginRatio, tt.env)
		s.Equal(tt.liquidationFee, cfg.EngineInitMsg.LiquidationFee, tt.env)
		s.Equal(tt.quoteAsset, cfg.VammInitMsg.QuoteAsset, tt.env)
		s.Equal(tt.baseAsset, cfg.VammInitMsg.BaseAsset, tt.env)
		s.Equal(tt.quoteReserve, cfg.VammInitMsg.QuoteAssetReserve, tt.env)
		s.Equal(tt.baseReserve, cfg.VammInitMsg.BaseAssetReserve, tt.env)
		s.Equal(tt.tollRatio, cfg.VammInitMsg.TollRatio, tt.env)
		s.Equal("0", cfg.VammInitMsg.SpreadRatio, tt.env)
		s.Equal("0", cfg.VammInitMsg.FluctuationLimitRatio, tt.env)
	}
}

func (s *RegistryTestSuite) Test_RatiosParseAsUnsignedIntegers() {
	for _, name := range s.registry.Names() {
		cfg, err := s.registry.Get(name)
		s.Require().NoError(err)

		for _, value := range []string{
			cfg.EngineInitMsg.InitialMarginRatio,
			cfg.EngineInitMsg.MaintenanceMarginRatio,
			cfg.EngineInitMsg.LiquidationFee,
			cfg.VammInitMsg.TollRatio,
			cfg.VammInitMsg.SpreadRatio,
			cfg.VammInitMsg.FluctuationLimitRatio,
		} {
			_, err := ParseAmount(value)
			s.NoError(err, "%s %q", name, value)
		}
	}
}

func (s *RegistryTestSuite) Test_ConstantProductComputable() {
	for _, name := range s.registry.Names() {
		cfg, err := s.registry.Get(name)
		s.Require().NoError(err)

		k, err := ConstantProduct(cfg.VammInitMsg)
		s.NoError(err, name)
		s.False(k.IsZero(), name)
	}
}

func (s *RegistryTestSuite) Test_JunoTestnetResolution() {
	cfg, err := s.registry.Get(JunoTestnet)
	s.Require().NoError(err)

	cfg, err = WithResolvedAddress(cfg, FieldOracleHubContract, "addr1")
	s.Require().NoError(err)
	cfg, err = WithResolvedAddress(cfg, FieldInsuranceFund, "addr2")
	s.Require().NoError(err)
	cfg, err = WithResolvedAddress(cfg, FieldFeePool, "addr3")
	s.Require().NoError(err)

	s.Equal("addr1", *cfg.PriceFeedInitMsg.OracleHubContract)
	s.Equal("addr2", *cfg.EngineInitMsg.InsuranceFund)
	s.Equal("addr3", *cfg.EngineInitMsg.FeePool)
	s.Equal("62500", cfg.EngineInitMsg.InitialMarginRatio)
	s.Equal("62500", cfg.EngineInitMsg.MaintenanceMarginRatio)
	s.Equal("12500", cfg.EngineInitMsg.LiquidationFee)
	s.Nil(cfg.EngineInitMsg.EligibleCollateral)
}

func (s *RegistryTestSuite) Test_LocalInitialPrice() {
	cfg, err := s.registry.Get(Local)
	s.Require().NoError(err)

	price, err := InitialPrice(cfg.VammInitMsg)
	s.Require().NoError(err)
	s.True(price.Equal(decimal.NewFromInt(1200)), price.String())
}

func TestNew_CopiesRecords(t *testing.T) {
	oracle := "addr1"
	cfg := Config{}
	cfg.PriceFeedInitMsg.OracleHubContract = &oracle

	r := New(map[string]Config{"devnet": cfg})
	oracle = "changed"

	got, err := r.Get("devnet")
	if err != nil {
		t.Fatal(err)
	}
	if *got.PriceFeedInitMsg.OracleHubContract != "addr1" {
		t.Errorf("registry shares pointers with its input: %s", *got.PriceFeedInitMsg.OracleHubContract)
	}
}
