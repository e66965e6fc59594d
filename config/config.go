// Package config holds the run configuration and serves it through the
// binding effect. Defaults are compiled into the binary.
package config

import (
	"context"
	_ "embed"
	"fmt"
	"maps"
	"slices"

	"github.com/on-the-ground/ballsinboxes/effects/binding"
	"github.com/on-the-ground/ballsinboxes/effects/configkeys"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Boxes         int
	Balls         int
	TraceEnabled  bool
	LogBufferSize int
}

// Defaults parses the embedded defaults into a flat map of dotted keys,
// ready to be handed to binding.WithEffectHandler.
func Defaults() (map[string]any, error) {
	return Parse(defaultsYAML)
}

// Parse flattens a YAML document into dotted keys ("config.instance.boxes").
func Parse(doc []byte) (map[string]any, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(doc, &tree); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	flat := make(map[string]any)
	flatten("", tree, flat)
	return flat, nil
}

func flatten(prefix string, node map[string]any, out map[string]any) {
	for _, k := range slices.Sorted(maps.Keys(node)) {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if child, ok := node[k].(map[string]any); ok {
			flatten(key, child, out)
			continue
		}
		out[key] = node[k]
	}
}

// BindingScope returns the binding handler sizes from a flat map, before any
// binding handler exists to serve them. Missing keys keep the handler defaults.
func BindingScope(flat map[string]any) (bufferSize, numWorkers int, err error) {
	sizeOf := func(key string) int {
		raw, ok := flat[key]
		if !ok {
			return 0
		}
		v, ok := raw.(int)
		if !ok {
			err = multierr.Append(err, fmt.Errorf("%s: unexpected type %T", key, raw))
		}
		return v
	}
	bufferSize = sizeOf(configkeys.ConfigEffectBindingHandlerBufferSize)
	numWorkers = sizeOf(configkeys.ConfigEffectBindingHandlerNumWorkers)
	return bufferSize, numWorkers, err
}

// Load reads every key through the binding effect registered in ctx.
// All missing or mistyped keys are reported together.
func Load(ctx context.Context) (Config, error) {
	var (
		cfg Config
		err error
	)
	read := func(dst *int, key string) {
		v, e := binding.GetFromBindingEffect[int](ctx, key)
		if e != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", key, e))
			return
		}
		*dst = v
	}

	read(&cfg.Boxes, configkeys.ConfigInstanceBoxes)
	read(&cfg.Balls, configkeys.ConfigInstanceBalls)
	read(&cfg.LogBufferSize, configkeys.ConfigEffectLogHandlerBufferSize)

	trace, e := binding.GetFromBindingEffect[bool](ctx, configkeys.ConfigTraceEnabled)
	if e != nil {
		err = multierr.Append(err, fmt.Errorf("%s: %w", configkeys.ConfigTraceEnabled, e))
	}
	cfg.TraceEnabled = trace

	return cfg, err
}
