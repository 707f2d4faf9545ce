package command

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sort"
	"strings"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/owlgraph/clog"
	"github.com/cayleygraph/owlgraph/graph"
	"github.com/cayleygraph/owlgraph/internal"
	"github.com/cayleygraph/owlgraph/internal/config"
	"github.com/cayleygraph/owlgraph/model"
)

const (
	flagLoad       = "load"
	flagLoadFormat = "load_format"
	flagDump       = "dump"
	flagDumpFormat = "dump_format"
)

var ErrNotPersistent = errors.New("database type is not persistent")

func formatNames(reader bool) []string {
	var names []string
	for _, f := range quad.Formats() {
		if (reader && f.Reader != nil) || (!reader && f.Writer != nil) {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	return names
}

func registerLoadFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagLoad, "i", "", `ontology file to load after initialization (".gz", ".bz2" and ".zst" supported, "-" for stdin)`)
	cmd.Flags().String(flagLoadFormat, "", `quad file format to use for loading instead of auto-detection ("`+strings.Join(formatNames(true), `", "`)+`")`)
}

// newConfig reads the config and applies the flags local to cmd.
func newConfig(cmd *cobra.Command, v *viper.Viper) *config.Config {
	conf := config.FromViper(v)
	if f := cmd.Flags().Lookup(flagLoadFormat); f != nil && f.Changed {
		conf.LoadFormat = f.Value.String()
	}
	return conf
}

func registerDumpFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagDump, "o", "", `file to dump the database to (".gz" and ".zst" supported, "-" for stdout)`)
	cmd.Flags().String(flagDumpFormat, "", `quad file format to use instead of auto-detection ("`+strings.Join(formatNames(false), `", "`)+`")`)
}

func NewInitDatabaseCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty database.",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := newConfig(cmd, v)
			printBackendInfo(conf)
			if graph.IsRegistered(conf.DatabaseType) && !graph.IsPersistent(conf.DatabaseType) {
				return ErrNotPersistent
			}
			return initDatabase(conf)
		},
	}
	return cmd
}

func NewLoadDatabaseCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load [file]",
		Short: "Bulk-load an ontology file into the database.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := newConfig(cmd, v)
			printBackendInfo(conf)
			p, err := setupProfile(cmd)
			if err != nil {
				return err
			}
			defer finishProfile(p)

			load, _ := cmd.Flags().GetString(flagLoad)
			if load == "" && len(args) == 1 {
				load = args[0]
			}
			if load == "" {
				return errors.New("one ontology file must be specified")
			}
			dump, _ := cmd.Flags().GetString(flagDump)
			if dump == "" && graph.IsRegistered(conf.DatabaseType) && !graph.IsPersistent(conf.DatabaseType) {
				return fmt.Errorf("%w: loaded data would be lost, use --dump to convert", ErrNotPersistent)
			}
			if init, err := cmd.Flags().GetBool("init"); err != nil {
				return err
			} else if init {
				if err = initDatabase(conf); err != nil {
					return err
				}
			}
			g, err := openDatabase(conf)
			if err != nil {
				return err
			}
			defer g.Close()

			start := time.Now()
			n, err := internal.Load(g, conf.LoadBatch, load, conf.LoadFormat)
			if err != nil {
				return err
			}
			clog.Infof("loaded %d triples from %q in %v", n, load, time.Since(start))

			if dump != "" {
				typ, _ := cmd.Flags().GetString(flagDumpFormat)
				if _, err = internal.Dump(g, dump, typ); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("init", false, "initialize the database before using it")
	registerLoadFlags(cmd)
	registerDumpFlags(cmd)
	return cmd
}

func NewDumpDatabaseCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Bulk-dump the database into a quad file.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := newConfig(cmd, v)
			printBackendInfo(conf)
			dump, _ := cmd.Flags().GetString(flagDump)
			if dump == "" && len(args) == 1 {
				dump = args[0]
			}
			if dump == "" {
				dump = "-"
			}
			g, err := openForQueries(cmd, conf)
			if err != nil {
				return err
			}
			defer g.Close()

			typ, _ := cmd.Flags().GetString(flagDumpFormat)
			if dump == "-" {
				_, err = internal.DumpTo(g, cmd.OutOrStdout(), dump, typ)
				return err
			}
			_, err = internal.Dump(g, dump, typ)
			return err
		},
	}
	registerDumpFlags(cmd)
	registerLoadFlags(cmd)
	return cmd
}

func printBackendInfo(conf *config.Config) {
	path := conf.DatabasePath
	if path != "" {
		path = " (" + path + ")"
	}
	clog.Infof("using backend %q%s", conf.DatabaseType, path)
}

func initDatabase(conf *config.Config) error {
	return graph.InitStore(conf.DatabaseType, conf.DatabasePath, conf.DatabaseOptions)
}

func openDatabase(conf *config.Config) (graph.Graph, error) {
	return graph.NewStore(conf.DatabaseType, conf.DatabasePath, conf.DatabaseOptions)
}

// openForQueries opens the database and loads the file given with -i, if any.
func openForQueries(cmd *cobra.Command, conf *config.Config) (graph.Graph, error) {
	if f := cmd.Flags().Lookup("init"); f != nil {
		if init, _ := cmd.Flags().GetBool("init"); init {
			if err := initDatabase(conf); errors.Is(err, graph.ErrDatabaseExists) {
				clog.Infof("database already initialized, skipping init")
			} else if err != nil {
				return nil, err
			}
		}
	}
	g, err := openDatabase(conf)
	if err != nil {
		return nil, err
	}
	if load, _ := cmd.Flags().GetString(flagLoad); load != "" {
		start := time.Now()
		n, err := internal.Load(g, conf.LoadBatch, load, conf.LoadFormat)
		if err != nil {
			g.Close()
			return nil, err
		}
		clog.Infof("loaded %d triples from %q in %v", n, load, time.Since(start))
	}
	return g, nil
}

func openModel(cmd *cobra.Command, conf *config.Config) (*model.Model, error) {
	g, err := openForQueries(cmd, conf)
	if err != nil {
		return nil, err
	}
	return model.New(g), nil
}

type profileData struct {
	cpuProfile *os.File
	memPath    string
}

func setupProfile(cmd *cobra.Command) (profileData, error) {
	p := profileData{}
	if f := cmd.Flag("memprofile"); f != nil {
		p.memPath = f.Value.String()
	}
	if f := cmd.Flag("cpuprofile"); f != nil && f.Value.String() != "" {
		out, err := os.Create(f.Value.String())
		if err != nil {
			return p, fmt.Errorf("could not open CPU profile file: %w", err)
		}
		p.cpuProfile = out
		if err := pprof.StartCPUProfile(out); err != nil {
			out.Close()
			return p, err
		}
	}
	return p, nil
}

func finishProfile(p profileData) {
	if p.cpuProfile != nil {
		pprof.StopCPUProfile()
		p.cpuProfile.Close()
	}
	if p.memPath != "" {
		f, err := os.Create(p.memPath)
		if err != nil {
			clog.Errorf("could not open memory profile file %s: %v", p.memPath, err)
			return
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			clog.Errorf("could not write memory profile file %s: %v", p.memPath, err)
		}
	}
}
