package config

import "sort"

var Presets = map[string]*Config{
	"best-case": {
		Algorithm: "insertion",
		Input:     InputConfig{Kind: "nearly-sorted", Size: 30, Swaps: 2},
	},
	"worst-case": {
		Algorithm: "quick",
		Input:     InputConfig{Kind: "reversed", Size: 30},
	},
	"duplicates": {
		Algorithm: "counting",
		Input:     InputConfig{Kind: "few-unique", Size: 40, Unique: 4},
	},
	"tiny": {
		Algorithm: "bogo",
		Input:     InputConfig{Kind: "random", Size: 5, Min: 1, Max: 9},
	},
	"classroom": {
		Algorithm: "bubble",
		Input:     InputConfig{Kind: "custom", Values: []int{5, 3, 8, 1}},
		Playback:  PlaybackConfig{Speed: 2},
	},
	"distribution": {
		Algorithm: "radix",
		Input:     InputConfig{Kind: "random", Size: 50, Min: 0, Max: 999},
	},
	"merge-vs-tim": {
		Algorithm: "tim",
		Input:     InputConfig{Kind: "random", Size: 100},
	},
}

// GetPreset returns a full config with the named preset applied over the
// defaults, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Algorithm = p.Algorithm
	cfg.Input.Kind = p.Input.Kind
	if p.Input.Size > 0 {
		cfg.Input.Size = p.Input.Size
	}
	if p.Input.Min != 0 || p.Input.Max != 0 {
		cfg.Input.Min, cfg.Input.Max = p.Input.Min, p.Input.Max
	}
	if p.Input.Swaps > 0 {
		cfg.Input.Swaps = p.Input.Swaps
	}
	if p.Input.Unique > 0 {
		cfg.Input.Unique = p.Input.Unique
	}
	if len(p.Input.Values) > 0 {
		cfg.Input.Values = append([]int(nil), p.Input.Values...)
		cfg.Input.Size = len(p.Input.Values)
	}
	if p.Playback.Speed > 0 {
		cfg.Playback.Speed = p.Playback.Speed
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
