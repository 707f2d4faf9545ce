package command

import (
	"fmt"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/owlgraph/axioms"
	"github.com/cayleygraph/owlgraph/owl"
	"github.com/cayleygraph/owlgraph/search"
	_ "github.com/cayleygraph/owlgraph/voc/core"
)

func printAxioms(cmd *cobra.Command, axs []*owl.Axiom) {
	w := cmd.OutOrStdout()
	for _, a := range axs {
		fmt.Fprintln(w, a.String())
	}
}

func NewAxiomsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "axioms",
		Short: "List axioms in functional-style syntax.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := newConfig(cmd, v)
			names, _ := cmd.Flags().GetStringSlice("type")
			types := owl.AxiomTypes()
			if len(names) != 0 {
				types = types[:0]
				for _, name := range names {
					t, ok := owl.ParseAxiomType(name)
					if !ok {
						return fmt.Errorf("unknown axiom type %q", name)
					}
					types = append(types, t)
				}
			}
			m, err := openModel(cmd, conf)
			if err != nil {
				return err
			}
			defer m.Graph().Close()

			f := owl.NewFactory(m, conf.CacheSize)
			for _, t := range types {
				axs, err := axioms.List(t, m, f, conf.Axioms)
				if err != nil {
					return err
				}
				printAxioms(cmd, axs)
			}
			return m.Err()
		},
	}
	cmd.Flags().StringSliceP("type", "t", nil, "axiom types to list (default all)")
	registerLoadFlags(cmd)
	return cmd
}

func NewSearchCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find axioms that reference an entity, anonymous individual or component type.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := newConfig(cmd, v)
			iri, _ := cmd.Flags().GetString("iri")
			kind, _ := cmd.Flags().GetString("kind")
			comp, _ := cmd.Flags().GetString("component")
			if iri == "" && comp == "" {
				return fmt.Errorf("either --iri or --component must be set")
			}
			m, err := openModel(cmd, conf)
			if err != nil {
				return err
			}
			defer m.Graph().Close()

			s := search.New(m, owl.NewFactory(m, conf.CacheSize), conf.Axioms)
			var axs []*owl.Axiom
			switch {
			case comp != "":
				ct, ok := owl.ParseComponentType(comp)
				if !ok {
					return fmt.Errorf("unknown component type %q", comp)
				}
				axs, err = s.ByComponentType(ct)
			case strings.HasPrefix(iri, "_:"):
				axs, err = s.ByAnonymousIndividual(quad.BNode(iri[2:]))
			case kind == "":
				axs, err = s.ByIRI(quad.IRI(voc.FullIRI(iri)))
			default:
				k, ok := search.ParseKind(kind)
				if !ok {
					return fmt.Errorf("unknown entity kind %q; expected one of %s", kind, strings.Join(search.KindNames(), ", "))
				}
				axs, err = s.ByEntity(owl.NewEntity(k, quad.IRI(voc.FullIRI(iri))))
			}
			if err != nil {
				return err
			}
			printAxioms(cmd, axs)
			return nil
		},
	}
	cmd.Flags().String("iri", "", `entity IRI or prefixed name, or "_:name" for an anonymous individual`)
	cmd.Flags().String("kind", "", `entity kind ("`+strings.Join(search.KindNames(), `", "`)+`"); without it the IRI is searched as a plain IRI`)
	cmd.Flags().String("component", "", "component type, e.g. Class or DataRange")
	registerLoadFlags(cmd)
	return cmd
}

func NewStatsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print axiom counts per type.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := newConfig(cmd, v)
			m, err := openModel(cmd, conf)
			if err != nil {
				return err
			}
			defer m.Graph().Close()

			f := owl.NewFactory(m, conf.CacheSize)
			w := cmd.OutOrStdout()
			total := 0
			for _, t := range owl.AxiomTypes() {
				axs, err := axioms.List(t, m, f, conf.Axioms)
				if err != nil {
					return err
				}
				if len(axs) != 0 {
					fmt.Fprintf(w, "%s\t%d\n", t, len(axs))
					total += len(axs)
				}
			}
			fmt.Fprintf(w, "total\t%d\ntriples\t%d\n", total, m.Graph().Size())
			return nil
		},
	}
	registerLoadFlags(cmd)
	return cmd
}
