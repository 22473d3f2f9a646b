package configs

import (
	"fmt"

	"github.com/spf13/viper"

	"transfer-simulator/domain/constants"
)

type Config struct {
	Port        string `json:"port" mapstructure:"port"`
	ENV         string `json:"env" mapstructure:"env"`
	MaxPoolSize int    `json:"max_pool_size" mapstructure:"max_pool_size"`
	// BankGwURI overrides the composed gateway address when set. Used by
	// tests and local gateways.
	BankGwURI     string `json:"bank_gw_uri" mapstructure:"bank_gw_uri"`
	GatewayScheme string `json:"gateway_scheme" mapstructure:"gateway_scheme"`
	GatewayDomain string `json:"gateway_domain" mapstructure:"gateway_domain"`
	SecretCode    string `json:"secret_code" mapstructure:"secret_code"`
}

// GatewayURI is the base address of the BIDV VA gateway, environment
// subdomain included.
func (c *Config) GatewayURI() string {
	if c.BankGwURI != "" {
		return c.BankGwURI
	}
	env := c.ENV
	if env == "" {
		env = constants.DefaultEnv
	}
	scheme := c.GatewayScheme
	if scheme == "" {
		scheme = "https"
	}
	return fmt.Sprintf("%v://s-3rdparty-%v.%v/api/v1/va/bidv/", scheme, env, c.GatewayDomain)
}

func LoadConfig() (*Config, error) {
	viper.AddConfigPath("./")
	viper.SetConfigType("json")
	viper.SetConfigName("config.json")
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = viper.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// LoadTestConfig load config for running tests
func LoadTestConfig(configPath string) (*Config, error) {
	viper.AddConfigPath(configPath)
	viper.SetConfigType("json")
	viper.SetConfigName("config_test.json")
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = viper.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
