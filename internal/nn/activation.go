package nn

import "fmt"

// Activation identifiers for layers that carry one.
//
// The linear activation is the identity and is the default for layers
// constructed with an empty activation string.
const (
	ActLinear  = "linear"
	ActReLU    = "relu"
	ActSigmoid = "sigmoid"
	ActTanh    = "tanh"
	ActSoftmax = "softmax"
)

// knownActivations is the set of identifiers layer constructors accept.
var knownActivations = map[string]bool{
	ActLinear:  true,
	ActReLU:    true,
	ActSigmoid: true,
	ActTanh:    true,
	ActSoftmax: true,
}

// normalizeActivation maps the empty string to linear and panics on an
// identifier outside the catalog. Constructors call this so that a typo
// in an architecture definition fails at build time, not in output.
func normalizeActivation(layer, activation string) string {
	if activation == "" {
		return ActLinear
	}
	if !knownActivations[activation] {
		panic(fmt.Sprintf("%s: unknown activation %q", layer, activation))
	}
	return activation
}
