package params

import (
	"io/ioutil"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// LoadConfigFile reads a verifier config file, applies it on top of the
// mainnet defaults and validates the result.
func LoadConfigFile(configFileName string) (*Config, error) {
	yamlFile, err := ioutil.ReadFile(configFileName) // #nosec G304
	if err != nil {
		return nil, errors.Wrap(err, "could not read config file")
	}
	conf := MainnetConfig().Copy()
	if err := yaml.UnmarshalStrict(yamlFile, conf); err != nil {
		return nil, errors.Wrap(err, "could not parse config yaml file")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	log.WithField("configFile", configFileName).Debug("Loaded verifier config")
	return conf, nil
}
