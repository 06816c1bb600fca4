package policy

import (
	"encoding/json"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/golearn-policy/agent"
	"github.com/samuelfneumann/golearn-policy/representation"
	"github.com/samuelfneumann/golearn-policy/utils/matutils/initializers/weights"
)

func TestTypedConfigJSON(t *testing.T) {
	rep, err := representation.NewLinear(representation.NewTabular(3), 2,
		weights.NewUniform(-1, 1, 1))
	if err != nil {
		t.Fatal(err)
	}

	configs := []agent.TypedConfig{
		NewEGreedyConfig(0.25, true),
		NewGibbsConfig(true),
	}

	for _, config := range configs {
		data, err := json.Marshal(config)
		if err != nil {
			t.Fatalf("marshal(%v): %v", config.Type, err)
		}

		var typed agent.TypedConfig
		if err := json.Unmarshal(data, &typed); err != nil {
			t.Fatalf("unmarshal(%s): %v", data, err)
		}

		if typed.Type != config.Type {
			t.Errorf("unmarshal: have type %v want %v", typed.Type,
				config.Type)
		}
		if typed.Config != config.Config {
			t.Errorf("unmarshal: have config %v want %v", typed.Config,
				config.Config)
		}

		p, err := typed.CreatePolicy(rep, 42)
		if err != nil {
			t.Fatalf("createPolicy(%v): %v", typed.Type, err)
		}
		if !typed.ValidPolicy(p) {
			t.Errorf("validPolicy: %T is not valid for %v", p, typed.Type)
		}

		state := mat.NewVecDense(1, []float64{2})
		if _, err := p.SelectAction(state, false, []int{0, 1}); err != nil {
			t.Errorf("selectAction(%v): %v", typed.Type, err)
		}
	}
}

func TestTypedConfigFromFile(t *testing.T) {
	data := []byte(`{"Type": "EGreedy-Linear", "Config": {"Epsilon": 0.1}}`)

	var typed agent.TypedConfig
	if err := json.Unmarshal(data, &typed); err != nil {
		t.Fatal(err)
	}
	config, ok := typed.Config.(EGreedyConfig)
	if !ok {
		t.Fatalf("unmarshal: have %T want EGreedyConfig", typed.Config)
	}
	if config.Epsilon != 0.1 || config.Deterministic {
		t.Errorf("unmarshal: have %+v", config)
	}

	bad := [][]byte{
		[]byte(`{"Type": "Unknown", "Config": {}}`),
		[]byte(`{"Type": "Gibbs-Linear", "Config": {"Unrestricted": 3}}`),
		[]byte(`[]`),
	}
	for _, b := range bad {
		if err := json.Unmarshal(b, &typed); err == nil {
			t.Errorf("unmarshal(%s): expected error", b)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	rep, err := representation.NewLinear(representation.NewTabular(1), 2,
		nil)
	if err != nil {
		t.Fatal(err)
	}

	c := EGreedyConfig{Epsilon: 1.2}
	if err := c.Validate(); err == nil {
		t.Error("validate: expected error for ε = 1.2")
	}
	if p, err := c.CreatePolicy(rep, 1); err == nil || p != nil {
		t.Errorf("createPolicy: have (%v, %v) want (nil, error)", p, err)
	}
}
