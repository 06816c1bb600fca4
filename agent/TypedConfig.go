package agent

import (
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"
)

// TypedConfig implements functionality for typing a Config.
// In this way, a Config can explicitly have its type stored so
// that when deserializing the Config, we can deserialize it into
// its concrete type without knowing beforehand or declaring beforehand
// a variable of its concrete type.
type TypedConfig struct {
	Type
	Config
}

// NewTypedConfig types the argument Config and returns it as a
// TypedConfig which explicitly holds its Type.
func NewTypedConfig(c Config) TypedConfig {
	return TypedConfig{Type: c.Type(), Config: c}
}

// UnmarshalJSON implements the json.Unmarshaller interface
func (t *TypedConfig) UnmarshalJSON(data []byte) error {
	config, typeName, err := unmarshalConfig(data, "Type", "Config")
	if err != nil {
		return err
	}

	t.Type = typeName
	t.Config = config

	return nil
}

// unmarshalConfig uses reflection to unmarshall a Config into its
// concrete type. Both the Config and its Type are returned.
func unmarshalConfig(data []byte, typeJSONField,
	valueJSONField string) (Config, Type, error) {
	m := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, "", errors.Wrap(err, "unmarshalConfig")
	}

	var typeName Type
	if err := json.Unmarshal(m[typeJSONField], &typeName); err != nil {
		return nil, "", errors.Wrapf(err, "unmarshalConfig: field %q",
			typeJSONField)
	}

	ty, found := registeredTypes[typeName]
	if !found {
		return nil, "", errors.Errorf("unmarshalConfig: unregistered "+
			"type %q", typeName)
	}

	value := reflect.New(ty)
	if raw, ok := m[valueJSONField]; ok {
		if err := json.Unmarshal(raw, value.Interface()); err != nil {
			return nil, "", errors.Wrapf(err, "unmarshalConfig: field %q",
				valueJSONField)
		}
	}
	config := value.Elem().Interface().(Config)

	if config.Type() != typeName {
		return nil, "", errors.Errorf("unmarshalConfig: registered "+
			"config has type %q but %q was requested", config.Type(),
			typeName)
	}

	return config, typeName, nil
}
