package agent

import (
	"reflect"

	"github.com/golang/glog"
)

// Type represents a specific type of a policy Config.
// Config's with this type can create Policies of the corresponding type.
type Type string

const (
	EGreedyLinear Type = "EGreedy-Linear"
	GibbsLinear   Type = "Gibbs-Linear"
)

// Registered types with the package. Once a Type has been registered
// with this map, a TypedConfig with that type can be deserialized.
//
// No Type's are registered wtih this package upon initialization.
// Each separate package is in charge of registering its Type with
// the package separately to avoid circular imports.
var registeredTypes = make(map[Type]reflect.Type)

// Register registers a policy's Type with a concrete Config type
// so that upon deserialization of a TypedConfig, Configs of type
// policyType are deserialized into the concrete Config type.
func Register(policyType Type, config Config) {
	glog.V(2).Infof("Registering: %v", policyType)
	registeredTypes[policyType] = reflect.TypeOf(config)
}

// IsRegistered returns whether a Type has been registered
func IsRegistered(policyType Type) bool {
	_, ok := registeredTypes[policyType]
	return ok
}
