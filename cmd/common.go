/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"nkrane/internal/terminology"
	"nkrane/internal/translator"
)

// openStore builds the glossary catalog from the configured directory.
func openStore() (*terminology.Store, error) {
	dir := viper.GetString("terms_dir")
	store, err := terminology.NewStore(dir)
	if err != nil {
		if errors.Is(err, terminology.ErrDirectoryNotFound) {
			return nil, fmt.Errorf("%w (set --terms-dir or terms_dir in the config file)", err)
		}
		return nil, err
	}
	return store, nil
}

// buildEngine constructs the translation engine selected by name, pulling
// engine-specific settings from the config.
func buildEngine(name string) (translator.Engine, error) {
	switch name {
	case "google":
		return translator.NewGoogleEngine(viper.GetString("google.credentials")), nil
	case "mymemory":
		return translator.NewMyMemoryEngine(viper.GetString("mymemory.email")), nil
	case "ollama":
		return translator.NewOllamaEngine(viper.GetString("ollama.url"), viper.GetString("ollama.model")), nil
	default:
		return nil, fmt.Errorf("unknown engine %q (available: google, mymemory, ollama)", name)
	}
}
