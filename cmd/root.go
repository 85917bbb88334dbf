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
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.2.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "nkrane",
	Short: "Terminology-controlled machine translation",
	Long: `nkrane translates technical and domain text into low-resource languages
while protecting specialized terminology.

Glossary terms found in the input are replaced with numeric markers before
the text reaches the machine translation engine, then every marker is
restored to its curated translation. Glossaries are CSV files named
<domain>_terms_<language>.csv inside the terminology directory.

Use "nkrane translate --help" for translation options.`,
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default .nkrane.yaml in cwd or home)")
	rootCmd.PersistentFlags().String("terms-dir", "./terminologies", "Directory with <domain>_terms_<language>.csv glossaries")
	rootCmd.PersistentFlags().String("engine", "google", "Translation engine (google, mymemory, ollama)")

	viper.BindPFlag("terms_dir", rootCmd.PersistentFlags().Lookup("terms-dir"))
	viper.BindPFlag("engine", rootCmd.PersistentFlags().Lookup("engine"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(".nkrane")
	}

	viper.SetEnvPrefix("NKRANE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
