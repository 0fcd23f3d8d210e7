package config

var Presets = map[string]map[string]*Config{
	"logistic": {
		"stable": {
			Map: "logistic", Param: 2.5, X0: 0.1, Steps: 100,
		},
		"cycle2": {
			Map: "logistic", Param: 3.2, X0: 0.1, Steps: 200, Period: 4,
		},
		"cycle3": {
			Map: "logistic", Param: 3.838, X0: 0.1, Steps: 200, Period: 8,
		},
		"chaos": {
			Map: "logistic", Param: 4.0, X0: 0.1, Steps: 500, Period: 8,
		},
	},
	"tent": {
		"stable": {
			Map: "tent", Param: 0.8, X0: 0.1, Steps: 100,
		},
		"chaos": {
			Map: "tent", Param: 1.999, X0: 0.1, Steps: 500,
		},
	},
	"ricker": {
		"stable": {
			Map: "ricker", Param: 1.5, X0: 0.1, Steps: 100,
		},
		"chaos": {
			Map: "ricker", Param: 3.0, X0: 0.1, Steps: 500,
		},
	},
}

// GetPreset returns the named preset for a map family, filled out with
// defaults for fields the preset leaves zero, or nil when not found.
func GetPreset(mapName, preset string) *Config {
	family, ok := Presets[mapName]
	if !ok {
		return nil
	}
	cfg, ok := family[preset]
	if !ok {
		return nil
	}

	out := DefaultConfig()
	out.Map = cfg.Map
	out.Param = cfg.Param
	out.X0 = cfg.X0
	if cfg.Steps != 0 {
		out.Steps = cfg.Steps
	}
	if cfg.Period != 0 {
		out.Period = cfg.Period
	}
	return out
}

// ListPresets lists preset names for a map family, or nil when the family
// has none.
func ListPresets(mapName string) []string {
	family, ok := Presets[mapName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(family))
	for name := range family {
		names = append(names, name)
	}
	return names
}
