package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/Lumerin-protocol/flow-editor-api/internal/lib"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/omeid/uconfig/flat"
)

const (
	TagEnv  = "env"
	TagFlag = "flag"
	TagDesc = "desc"
)

var (
	ErrEnvLoad          = errors.New("cannot load .env file")
	ErrEnvParse         = errors.New("cannot parse env variable")
	ErrFlagParse        = errors.New("cannot parse flag")
	ErrConfigInvalid    = errors.New("invalid config struct")
	ErrConfigValidation = errors.New("config validation error")
)

type ConfigInterface interface {
	SetDefaults()
}

// LoadConfig fills cfg from .env file, environment variables and command line flags,
// in the ascending order of precedence, then applies defaults and validates the result
func LoadConfig(cfg ConfigInterface, osArgs []string, dotEnvFiles ...string) error {
	err := godotenv.Load(dotEnvFiles...)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return lib.WrapError(ErrEnvLoad, err)
	}

	// recursively iterates over each field of the nested struct
	fields, err := flat.View(cfg)
	if err != nil {
		return lib.WrapError(ErrConfigInvalid, err)
	}

	flagset := flag.NewFlagSet("", flag.ContinueOnError)

	for _, field := range fields {
		envName, ok := field.Tag(TagEnv)
		if !ok {
			continue
		}

		envValue, ok := os.LookupEnv(envName)
		if ok && envValue != "" {
			err := field.Set(envValue)
			if err != nil {
				return lib.WrapError(ErrEnvParse, fmt.Errorf("%s: %w", envName, err))
			}
		}

		flagName, ok := field.Tag(TagFlag)
		if !ok {
			continue
		}

		flagDesc, _ := field.Tag(TagDesc)

		// writes flag value to variable
		flagset.Var(field, flagName, flagDesc)
	}

	var args []string
	if len(osArgs) > 1 {
		args = osArgs[1:]
	}

	// flags override .env variables
	err = flagset.Parse(args)
	if err != nil {
		return lib.WrapError(ErrFlagParse, err)
	}

	cfg.SetDefaults()

	err = validator.New().Struct(cfg)
	if err != nil {
		return lib.WrapError(ErrConfigValidation, err)
	}

	return nil
}
