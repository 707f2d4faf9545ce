package command

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/owlgraph/clog"
	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/internal/config"
)

// EnvConfig names the environment variable with the default config file.
const EnvConfig = "OWLGRAPH_CFG"

// NewRootCmd builds the owlgraph command tree around its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:           "owlgraph",
		Short:         "OWL 2 axioms over an RDF triple graph.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("config")
			if file == "" {
				file = os.Getenv(EnvConfig)
			}
			return loadConfig(v, file)
		},
	}
	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "path to an explicit configuration file")
	pf.StringP("db", "d", config.DefaultBackend, `database backend to use ("`+strings.Join(graph.Stores(), `", "`)+`")`)
	pf.StringP("dbpath", "a", "", "path or address string for database")
	pf.Bool("ignore_errors", false, "skip malformed axioms instead of failing")
	pf.Bool("split_annotations", false, "read one axiom per bulk annotation")
	pf.String("cpuprofile", "", "path to output CPU profile")
	pf.String("memprofile", "", "path to output memory profile")
	pf.AddGoFlagSet(flag.CommandLine)

	v.BindPFlag(config.KeyBackend, pf.Lookup("db"))
	v.BindPFlag(config.KeyAddress, pf.Lookup("dbpath"))
	v.BindPFlag(config.KeyIgnoreReadErrors, pf.Lookup("ignore_errors"))
	v.BindPFlag(config.KeySplitAxiomAnnotations, pf.Lookup("split_annotations"))
	v.SetEnvPrefix("OWLGRAPH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	root.AddCommand(
		NewInitDatabaseCmd(v),
		NewLoadDatabaseCmd(v),
		NewDumpDatabaseCmd(v),
		NewAxiomsCmd(v),
		NewSearchCmd(v),
		NewStatsCmd(v),
		NewReplCmd(v),
		NewHttpCmd(v),
	)
	return root
}

// loadConfig installs the file values as viper defaults. JSON files use the
// flat config layout; other formats are read by viper with nested keys.
func loadConfig(v *viper.Viper, file string) error {
	switch filepath.Ext(file) {
	case "", ".json":
		conf, err := config.Load(file)
		if err != nil {
			return err
		}
		conf.SetDefaults(v)
	default:
		config.Default().SetDefaults(v)
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}
	if file != "" {
		clog.Infof("using config file %q", file)
	}
	return nil
}
