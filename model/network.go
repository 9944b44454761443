package model

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"math"
)

var (
	ErrBadTopology = fmt.Errorf("malformed topology descriptor")
	ErrBadWeights  = fmt.Errorf("weights do not match topology")
)

var activations = map[string]func(float64) float64{
	"relu": func(x float64) float64 {
		if x > 0 {
			return x
		}
		return 0
	},
	"sigmoid": func(x float64) float64 {
		return 1 / (1 + math.Exp(-x))
	},
	"tanh":   math.Tanh,
	"linear": func(x float64) float64 { return x },
}

type layerSpec struct {
	Units      int    `json:"units"`
	Activation string `json:"activation"`
}

type topology struct {
	Inputs int         `json:"inputs"`
	Layers []layerSpec `json:"layers"`
}

type layerWeights struct {
	Weights [][]float64 `json:"weights"`
	Bias    []float64   `json:"bias"`
}

type denseLayer struct {
	weights    [][]float64 // one row per input, one column per unit
	bias       []float64
	activation func(float64) float64
}

// Network is a dense feed-forward binary classifier restored from a topology
// descriptor plus a matching weights artifact. Immutable after load.
type Network struct {
	inputs int
	layers []denseLayer
}

// LoadNetwork restores a classifier from its two artifact files. The last
// layer must be a single sigmoid unit so Predict yields a probability.
func LoadNetwork(topologyFile, weightsFile string) (*Network, error) {
	topologyData, err := ioutil.ReadFile(topologyFile)
	if nil != err {
		return nil, err
	}

	var spec topology
	if err := json.Unmarshal(topologyData, &spec); nil != err {
		return nil, err
	}

	if spec.Inputs <= 0 || len(spec.Layers) == 0 {
		return nil, ErrBadTopology
	}

	last := spec.Layers[len(spec.Layers)-1]
	if last.Units != 1 || last.Activation != "sigmoid" {
		return nil, fmt.Errorf("%w: output layer must be one sigmoid unit", ErrBadTopology)
	}

	weightsData, err := ioutil.ReadFile(weightsFile)
	if nil != err {
		return nil, err
	}

	var weights []layerWeights
	if err := json.Unmarshal(weightsData, &weights); nil != err {
		return nil, err
	}

	if len(weights) != len(spec.Layers) {
		return nil, fmt.Errorf("%w: got %d weight blocks for %d layers",
			ErrBadWeights, len(weights), len(spec.Layers))
	}

	network := &Network{inputs: spec.Inputs}

	width := spec.Inputs
	for i, layer := range spec.Layers {
		activation, ok := activations[layer.Activation]
		if !ok {
			return nil, fmt.Errorf("%w: unknown activation %q", ErrBadTopology, layer.Activation)
		}
		if layer.Units <= 0 {
			return nil, ErrBadTopology
		}

		w := weights[i]
		if len(w.Weights) != width || len(w.Bias) != layer.Units {
			return nil, fmt.Errorf("%w: layer %d", ErrBadWeights, i)
		}
		for _, row := range w.Weights {
			if len(row) != layer.Units {
				return nil, fmt.Errorf("%w: layer %d", ErrBadWeights, i)
			}
		}

		network.layers = append(network.layers, denseLayer{
			weights:    w.Weights,
			bias:       w.Bias,
			activation: activation,
		})
		width = layer.Units
	}

	return network, nil
}

// Features implements Classifier.
func (n *Network) Features() int {
	return n.inputs
}

// Predict runs one forward pass. Deterministic: the same vector always
// yields the same probability.
func (n *Network) Predict(features []float64) (float64, error) {
	if len(features) != n.inputs {
		return 0, fmt.Errorf("%w: got %d features, network expects %d",
			ErrShapeMismatch, len(features), n.inputs)
	}

	in := features
	for _, layer := range n.layers {
		out := make([]float64, len(layer.bias))
		for j := range out {
			sum := layer.bias[j]
			for i, v := range in {
				sum += v * layer.weights[i][j]
			}
			out[j] = layer.activation(sum)
		}
		in = out
	}

	return in[0], nil
}
