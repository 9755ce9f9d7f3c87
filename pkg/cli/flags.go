// Copyright 2026 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.


package cli

import (
	"github.com/cockroachdb/dagserde/pkg/cli/clierror"
	"github.com/cockroachdb/dagserde/pkg/cli/cliflags"
	"github.com/cockroachdb/dagserde/pkg/cli/exit"
	"github.com/cockroachdb/dagserde/pkg/keycmp"
	"github.com/cockroachdb/dagserde/pkg/util/humanizeutil"
	"github.com/cockroachdb/dagserde/pkg/util/log"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// cliContext holds the values of the command-line flags.
type cliContext struct {
	ordering     string
	orderingName string
	configPath   string
	verbosity    int
	redactable   bool

	memoryBudget int64
	storeDir     string
	group        bool
	printMetrics bool

	// ord is resolved from the flags before any command runs.
	ord keycmp.Ordering
	// config is loaded when --config is given.
	config *keycmp.Config
}

var cliCtx cliContext

// initCLIDefaults sets the flag values back to their defaults.
func initCLIDefaults() {
	cliCtx = cliContext{}
	log.SetThreshold(log.WarningLog)
	for _, cmd := range append(dagserdeCmd.Commands(), dagserdeCmd) {
		cmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
}

func setFlagFromEnv(f *pflag.FlagSet, flagInfo cliflags.FlagInfo) {
	if flagInfo.EnvVar != "" {
		if value, set := lookupEnv(flagInfo.EnvVar); set {
			if err := f.Set(flagInfo.Name, value); err != nil {
				panic(errors.Wrapf(err, "invalid value for %s", flagInfo.EnvVar))
			}
		}
	}
}

// StringFlag creates a string flag and registers it with the FlagSet.
func StringFlag(f *pflag.FlagSet, valPtr *string, flagInfo cliflags.FlagInfo, defaultVal string) {
	f.StringVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// IntFlag creates an int flag and registers it with the FlagSet.
func IntFlag(f *pflag.FlagSet, valPtr *int, flagInfo cliflags.FlagInfo, defaultVal int) {
	f.IntVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// BoolFlag creates a bool flag and registers it with the FlagSet.
func BoolFlag(f *pflag.FlagSet, valPtr *bool, flagInfo cliflags.FlagInfo, defaultVal bool) {
	f.BoolVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// VarFlag creates a custom-variable flag and registers it with the FlagSet.
func VarFlag(f *pflag.FlagSet, value pflag.Value, flagInfo cliflags.FlagInfo) {
	f.VarP(value, flagInfo.Name, flagInfo.Shorthand, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

func init() {
	initCLIDefaults()

	{
		f := dagserdeCmd.PersistentFlags()
		StringFlag(f, &cliCtx.ordering, cliflags.Ordering, "")
		StringFlag(f, &cliCtx.orderingName, cliflags.OrderingName, "")
		StringFlag(f, &cliCtx.configPath, cliflags.Config, "")
		VarFlag(f, log.Threshold(), cliflags.LogLevel)
		IntFlag(f, &cliCtx.verbosity, cliflags.Verbosity, 0)
		BoolFlag(f, &cliCtx.redactable, cliflags.Redactable, false)
	}

	{
		f := sortCmd.Flags()
		VarFlag(f, humanizeutil.NewBytesValue(&cliCtx.memoryBudget), cliflags.MemoryBudget)
		StringFlag(f, &cliCtx.storeDir, cliflags.StoreDir, "")
		BoolFlag(f, &cliCtx.group, cliflags.Group, false)
		BoolFlag(f, &cliCtx.printMetrics, cliflags.Metrics, false)
	}
}

// resolveOrdering determines the ordering from --ordering, or from
// --ordering-name and the --config file. It also applies the memory budget
// of the config file unless --memory-budget was given.
func resolveOrdering(cmd *cobra.Command) (keycmp.Ordering, error) {
	if cliCtx.configPath != "" {
		cfg, err := keycmp.LoadConfig(cliCtx.configPath)
		if err != nil {
			return nil, clierror.NewError(err, exit.CommandLineFlagError())
		}
		cliCtx.config = cfg
		if f := cmd.Flags().Lookup(cliflags.MemoryBudget.Name); f != nil && !f.Changed {
			if cliCtx.memoryBudget, err = cfg.Budget(); err != nil {
				return nil, clierror.NewError(err, exit.CommandLineFlagError())
			}
		}
	}

	var err error
	var ord keycmp.Ordering
	switch {
	case cliCtx.ordering != "" && cliCtx.orderingName != "":
		err = errors.Newf("--%s and --%s are mutually exclusive",
			cliflags.Ordering.Name, cliflags.OrderingName.Name)
	case cliCtx.ordering != "":
		ord, err = keycmp.ParseOrdering(cliCtx.ordering)
	case cliCtx.orderingName != "":
		if cliCtx.config == nil {
			err = errors.Newf("--%s requires --%s", cliflags.OrderingName.Name, cliflags.Config.Name)
		} else {
			ord, err = cliCtx.config.Lookup(cliCtx.orderingName)
		}
	default:
		err = errors.Newf("one of --%s or --%s is required",
			cliflags.Ordering.Name, cliflags.OrderingName.Name)
	}
	if err != nil {
		return nil, clierror.NewError(err, exit.CommandLineFlagError())
	}
	return ord, nil
}
