// Package config provides configuration loading and validation for the
// crous client and CLI.
//
// It uses Viper to load a single YAML file. There is no environment-variable
// binding: the file (or the built-in defaults) is the only source.
//
// # Usage
//
//	cfg, err := config.Load(config.WithConfigFile("crous.yml"))
//
// Without an explicit path the loader searches ./crous.yml,
// ./config/crous.yml and $HOME/.config/crous/crous.yml in that order.
package config
