package appconf

import (
	"strings"

	"gopkg.in/yaml.v3"
)

type Environment int

const (
	Unknown Environment = iota
	Development
	Test
	Production
)

// EnvFlagToEnvironment maps the -env flag value to an Environment.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "development", "dev":
		return Development
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Unknown
	}
}

func (e Environment) String() string {
	switch e {
	case Development:
		return "development"
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "unknown"
	}
}

func (e *Environment) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*e = EnvFlagToEnvironment(s)
	return nil
}

func (e Environment) MarshalYAML() (interface{}, error) {
	return e.String(), nil
}
