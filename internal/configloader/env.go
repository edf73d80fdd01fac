package configloader

import (
	"strconv"

	"github.com/joeshaw/envdecode"

	"github.com/quillfmt/quill/internal/logging"
	"github.com/quillfmt/quill/pkg/options"
)

// envOverrides is decoded from QUILL_* environment variables. String fields
// stay empty when the variable is unset, which means "no override".
type envOverrides struct {
	UseTabs        string `env:"QUILL_USE_TABS"`
	TabWidth       string `env:"QUILL_TAB_WIDTH"`
	PrintWidth     string `env:"QUILL_PRINT_WIDTH"`
	SingleQuote    string `env:"QUILL_SINGLE_QUOTE"`
	JSXSingleQuote string `env:"QUILL_JSX_SINGLE_QUOTE"`
	Semi           string `env:"QUILL_SEMI"`
	EndOfLine      string `env:"QUILL_END_OF_LINE"`
}

// fromEnv reads environment overrides into a raw option fragment.
// Unparseable values are dropped with a warning rather than failing the
// run; the normalizer would only default them anyway.
func fromEnv() options.Raw {
	var env envOverrides
	// Every field is optional; decode errors only mean nothing was set.
	_ = envdecode.Decode(&env)

	raw := options.Raw{}
	putBool(raw, "useTabs", env.UseTabs)
	putInt(raw, "tabWidth", env.TabWidth)
	putInt(raw, "printWidth", env.PrintWidth)
	putBool(raw, "singleQuote", env.SingleQuote)
	putBool(raw, "jsxSingleQuote", env.JSXSingleQuote)
	putBool(raw, "semi", env.Semi)
	if env.EndOfLine != "" {
		raw["endOfLine"] = env.EndOfLine
	}
	return raw
}

func putBool(raw options.Raw, field, value string) {
	if value == "" {
		return
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		logging.Default().Warn("ignoring environment override",
			logging.FieldConfig, field, logging.FieldError, err)
		return
	}
	raw[field] = b
}

func putInt(raw options.Raw, field, value string) {
	if value == "" {
		return
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		logging.Default().Warn("ignoring environment override",
			logging.FieldConfig, field, logging.FieldError, err)
		return
	}
	raw[field] = n
}
