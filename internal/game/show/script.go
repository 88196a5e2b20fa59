package show

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed script.yaml
var defaultScript []byte

// Script holds the host's onboarding and sign-off lines.
//
// Invariant: every prompt and message field is non-empty after loading; Ladder may be empty.
type Script struct {
	Welcome          []string `yaml:"welcome"`
	ReadyPrompt      string   `yaml:"ready_prompt"`
	ReconsiderPrompt string   `yaml:"reconsider_prompt"`
	CallToAction     string   `yaml:"call_to_action"`
	// Ladder is consumed in order, one entry per unusable readiness answer.
	Ladder       []string `yaml:"ladder"`
	Goodbye      string   `yaml:"goodbye"`
	Restart      string   `yaml:"restart"`
	RefuseToPlay string   `yaml:"refuse_to_play"`
}

// DefaultScript returns the embedded script.
//
// Postcondition: the result passes Validate.
func DefaultScript() Script {
	s, err := ParseScript(defaultScript, Script{})
	if err != nil {
		panic("show: embedded script is invalid: " + err.Error())
	}
	return s
}

// LoadScript reads a YAML script from path. Fields absent from the file keep
// their embedded values.
//
// Postcondition: Returns a valid Script or a non-nil error.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("reading %s: %w", path, err)
	}
	s, err := ParseScript(data, DefaultScript())
	if err != nil {
		return Script{}, fmt.Errorf("parsing script file %s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes data over base and validates the result.
func ParseScript(data []byte, base Script) (Script, error) {
	s := base
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, err
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Validate reports every empty required field.
func (s Script) Validate() error {
	var missing []string
	for name, v := range map[string]string{
		"ready_prompt":      s.ReadyPrompt,
		"reconsider_prompt": s.ReconsiderPrompt,
		"call_to_action":    s.CallToAction,
		"goodbye":           s.Goodbye,
		"restart":           s.Restart,
		"refuse_to_play":    s.RefuseToPlay,
	} {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("script fields must not be empty: %s", strings.Join(missing, ", "))
	}
	return nil
}
