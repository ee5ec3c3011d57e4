package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrEmptyEtherpadAPIURL error if config etherpad.apiurl is empty.
	ErrEmptyEtherpadAPIURL = errors.New("toml config etherpad.apiurl can not be empty")

	// ErrEmptyEtherpadAPIKey error if config etherpad.apikey is empty.
	ErrEmptyEtherpadAPIKey = errors.New("toml config etherpad.apikey can not be empty")
)
