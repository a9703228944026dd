package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// config is the settings loaded from the TOML file given by --config or
// $NION_CONFIG. Flags take precedence over the file.
type config struct {
	Prompt               string   `toml:"prompt"`
	ContinuePrompt       string   `toml:"continue_prompt"`
	Colors               string   `toml:"colors"`
	Prelude              []string `toml:"prelude"`
	ShowStack            bool     `toml:"show_stack"`
	StepLimit            int      `toml:"step_limit"`
	TranscriptTimeFormat string   `toml:"transcript_time_format"`
}

func defaultConfig() *config {
	return &config{
		Prompt:               "> ",
		ContinuePrompt:       "... ",
		TranscriptTimeFormat: "%Y-%m-%d %H:%M:%S %z",
	}
}

// loadConfig reads the config file. Relative prelude paths are resolved
// against the directory of the file.
func loadConfig(fname string) (*config, error) {
	cfg := defaultConfig()
	if fname == "" {
		if fname = os.Getenv("NION_CONFIG"); fname == "" {
			return cfg, nil
		}
	}
	cnt, err := os.ReadFile(fname)
	if err != nil {
		return nil, &configError{fname, err}
	}
	if err := toml.Unmarshal(cnt, cfg); err != nil {
		return nil, &configError{fname, err}
	}
	for i, p := range cfg.Prelude {
		if !filepath.IsAbs(p) {
			cfg.Prelude[i] = filepath.Join(filepath.Dir(fname), p)
		}
	}
	return cfg, nil
}
