package deployer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/margined-protocol/mrgnd-perpetuals/cosmwasm-schema/engine"
	insurancefund "github.com/margined-protocol/mrgnd-perpetuals/cosmwasm-schema/insurance-fund"
	"github.com/margined-protocol/mrgnd-perpetuals/cosmwasm-schema/pricefeed"
	"github.com/margined-protocol/mrgnd-perpetuals/cosmwasm-schema/vamm"
	"github.com/margined-protocol/mrgnd-perpetuals/logger"
	"github.com/margined-protocol/mrgnd-perpetuals/metrics"
	"github.com/margined-protocol/mrgnd-perpetuals/registry"
)

type DeployedWasmContract struct {
	CodeId  uint64 `json:"code_id" yaml:"code_id" toml:"code_id"`
	Address string `json:"address" yaml:"address" toml:"address"`
	Label   string `json:"label" yaml:"label" toml:"label"`
}

type Contract[T interface{}] struct {
	DeployedWasmContract `yaml:",inline"`
	InstantiateMsg       T `json:"instantiate_msg" yaml:"instantiate_msg" toml:"instantiate_msg"`
}

// InstantiateRequest is everything needed to build a MsgInstantiateContract.
type InstantiateRequest struct {
	Module registry.Module
	Sender string
	Admin  string
	CodeID uint64
	Label  string
	Msg    []byte
}

// Instantiator instantiates stored contract code and returns the new contract address.
type Instantiator interface {
	Instantiate(ctx context.Context, req InstantiateRequest) (string, error)
}

type Deployer struct {
	instantiator Instantiator
	opts         Options
	logger       logger.Logger
	metrics      metrics.Recorder
}

func New(instantiator Instantiator, opts Options, log logger.Logger, recorder metrics.Recorder) *Deployer {
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	return &Deployer{
		instantiator: instantiator,
		opts:         opts,
		logger:       log,
		metrics:      recorder,
	}
}

// Step is one instantiation, in deployment order.
type Step struct {
	Module  registry.Module `json:"module" yaml:"module" toml:"module"`
	CodeID  uint64          `json:"code_id" yaml:"code_id" toml:"code_id"`
	Label   string          `json:"label" yaml:"label" toml:"label"`
	Address string          `json:"address" yaml:"address" toml:"address"`
	Msg     RawMsg          `json:"msg" yaml:"msg" toml:"msg"`
}

// RawMsg is an instantiate message kept byte for byte. It is embedded as is in
// JSON and written as a JSON string by text encoders such as yaml and toml.
type RawMsg []byte

func (m RawMsg) MarshalJSON() ([]byte, error) {
	if len(m) == 0 {
		return []byte("null"), nil
	}
	return m, nil
}

func (m *RawMsg) UnmarshalJSON(data []byte) error {
	*m = append((*m)[0:0], data...)
	return nil
}

func (m RawMsg) MarshalText() ([]byte, error) {
	return m, nil
}

func (m *RawMsg) UnmarshalText(text []byte) error {
	if !json.Valid(text) {
		return fmt.Errorf("instantiate msg is not valid JSON: %q", text)
	}
	*m = append((*m)[0:0], text...)
	return nil
}

type Result struct {
	Environment   string                                  `json:"environment" yaml:"environment" toml:"environment"`
	PriceFeed     *Contract[pricefeed.InstantiateMsg]     `json:"pricefeed,omitempty" yaml:"pricefeed,omitempty" toml:"pricefeed,omitempty"`
	InsuranceFund *Contract[insurancefund.InstantiateMsg] `json:"insurance_fund,omitempty" yaml:"insurance_fund,omitempty" toml:"insurance_fund,omitempty"`
	Engine        *Contract[engine.InstantiateMsg]        `json:"engine,omitempty" yaml:"engine,omitempty" toml:"engine,omitempty"`
	Vamm          *Contract[vamm.InstantiateMsg]          `json:"vamm,omitempty" yaml:"vamm,omitempty" toml:"vamm,omitempty"`
	Steps         []Step                                  `json:"steps" yaml:"steps" toml:"steps"`
	// Config is the record with every address resolved so far.
	Config registry.Config `json:"config" yaml:"config" toml:"config"`
}

// Deploy instantiates the four contracts of env in deployment order, threading each
// provided address into the record before the modules depending on it.
// On failure the returned Result holds the contracts already instantiated.
func (d *Deployer) Deploy(ctx context.Context, env string, cfg registry.Config) (*Result, error) {
	if err := cfg.ValidateTemplate(env); err != nil {
		return nil, err
	}
	start := time.Now()
	res := &Result{Environment: env, Config: cfg.Clone()}

	for _, module := range registry.DeploymentOrder() {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("deploy %s: %w", env, err)
		}

		if err := res.Config.ReadyFor(env, module); err != nil {
			d.metrics.InstantiationFailed(env, string(module))
			d.logger.Error("Module is not ready to be instantiated",
				logger.WithField("environment", env),
				logger.WithField("module", module),
				logger.WithField("error", err),
			)
			return res, fmt.Errorf("deploy %s %s: %w", env, module, err)
		}

		deployed, err := d.deployModule(ctx, env, module, res)
		if err != nil {
			d.metrics.InstantiationFailed(env, string(module))
			d.logger.Error("Failed to instantiate",
				logger.WithField("environment", env),
				logger.WithField("module", module),
				logger.WithField("error", err),
			)
			return res, fmt.Errorf("deploy %s %s: %w", env, module, err)
		}
		d.metrics.Instantiated(env, string(module))
		d.logger.Info("Instantiated",
			logger.WithField("environment", env),
			logger.WithField("module", module),
			logger.WithField("code_id", deployed.CodeId),
			logger.WithField("address", deployed.Address),
		)

		if field, ok := module.Provides(); ok {
			resolved, err := registry.WithResolvedAddress(res.Config, field, deployed.Address)
			if err != nil {
				return res, fmt.Errorf("deploy %s %s: %w", env, module, err)
			}
			res.Config = resolved
			d.logger.Debug("Resolved address",
				logger.WithField("environment", env),
				logger.WithField("field", field),
				logger.WithField("address", deployed.Address),
			)
		}
	}

	if err := res.Config.Validate(env); err != nil {
		return res, err
	}
	d.metrics.DeployDuration(env, time.Since(start))
	return res, nil
}

func (d *Deployer) deployModule(ctx context.Context, env string, module registry.Module, res *Result) (DeployedWasmContract, error) {
	cfg := res.Config
	switch module {
	case registry.ModulePriceFeed:
		c, err := deployCrate(ctx, d, res, module, cfg.PriceFeedInitMsg)
		if err != nil {
			return DeployedWasmContract{}, err
		}
		res.PriceFeed = c
		return c.DeployedWasmContract, nil
	case registry.ModuleInsuranceFund:
		c, err := deployCrate(ctx, d, res, module, cfg.InsuranceFundInitMsg)
		if err != nil {
			return DeployedWasmContract{}, err
		}
		res.InsuranceFund = c
		return c.DeployedWasmContract, nil
	case registry.ModuleEngine:
		c, err := deployCrate(ctx, d, res, module, cfg.EngineInitMsg)
		if err != nil {
			return DeployedWasmContract{}, err
		}
		res.Engine = c
		return c.DeployedWasmContract, nil
	case registry.ModuleVamm:
		c, err := deployCrate(ctx, d, res, module, cfg.VammInitMsg)
		if err != nil {
			return DeployedWasmContract{}, err
		}
		res.Vamm = c
		return c.DeployedWasmContract, nil
	default:
		return DeployedWasmContract{}, fmt.Errorf("unknown module %q in %s", module, env)
	}
}

func deployCrate[T interface{}](ctx context.Context, d *Deployer, res *Result, module registry.Module, initMsg T) (*Contract[T], error) {
	codeID, err := d.opts.CodeIDs.For(module)
	if err != nil {
		return nil, err
	}

	initBytes, err := json.Marshal(initMsg)
	if err != nil {
		return nil, fmt.Errorf("marshal instantiate msg: %w", err)
	}

	label := d.opts.label(module)
	addr, err := d.instantiator.Instantiate(ctx, InstantiateRequest{
		Module: module,
		Sender: d.opts.Sender,
		Admin:  d.opts.Admin,
		CodeID: codeID,
		Label:  label,
		Msg:    initBytes,
	})
	if err != nil {
		return nil, err
	}

	contract := &Contract[T]{
		DeployedWasmContract: DeployedWasmContract{
			CodeId:  codeID,
			Address: addr,
			Label:   label,
		},
		InstantiateMsg: initMsg,
	}
	res.Steps = append(res.Steps, Step{
		Module:  module,
		CodeID:  codeID,
		Label:   label,
		Address: addr,
		Msg:     initBytes,
	})
	return contract, nil
}
