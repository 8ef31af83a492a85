package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"gopkg.in/yaml.v3"
)

// loadConfigFile reads settings from a YAML file into conf. Nested maps are
// flattened into dotted keys, i.e.
//
//     style:
//       gapceiling: 64
//     tracelevel:
//       design2html.emit: Debug
//
// sets keys "style.gapceiling" and "tracelevel.design2html.emit".
func loadConfigFile(conf *koanfadapter.KConf, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var settings map[string]interface{}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	flatten("", settings, func(key string, value interface{}) {
		tracer().Debugf("config %s = %v", key, value)
		conf.Set(key, value)
	})
	return nil
}

func flatten(prefix string, m map[string]interface{}, set func(string, interface{})) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]interface{}); ok {
			flatten(key, sub, set)
			continue
		}
		set(key, v)
	}
}
