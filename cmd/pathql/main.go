// SPDX-License-Identifier: MIT
//
// pathql is the thin command-line driver around the query engine.
// Three entry modes, checked in this order; only the first one given
// runs and the others are ignored:
//
//	-script file.pql          run a query-language program
//	-session session.yaml     run a YAML batch session
//	-graph g.dot -regex ...   run a single RPQ/CFPQ query from flags
//
// Results go to stdout one per line ((u, v) pairs as "u\tv"); errors go
// to stderr with a nonzero exit status. No result tables, no rich
// diagnostics.
package main

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/katalvlaran/pathql/cfpq"
	"github.com/katalvlaran/pathql/config"
	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/lang"
	"github.com/katalvlaran/pathql/loader"
	"github.com/katalvlaran/pathql/pgraph"
	"github.com/katalvlaran/pathql/rpq"
)

type options struct {
	Script  string
	Session string

	Graph     string
	Regex     string
	Mode      string
	Grammar   string
	Algorithm string
	Variable  string
	Sources   goflags.StringSlice
	Finals    goflags.StringSlice

	Verbose bool
	Silent  bool
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Path-constraint queries (RPQ/CFPQ) over labeled directed graphs.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Script, "script", "s", "", "query-language script to run"),
		flagSet.StringVar(&opts.Session, "session", "", "YAML batch-session file to run"),
		flagSet.StringVarP(&opts.Graph, "graph", "g", "", "graph file (DOT-like, labeled edges)"),
	)

	flagSet.CreateGroup("query", "Query",
		flagSet.StringVarP(&opts.Regex, "regex", "r", "", "RPQ regular-expression constraint"),
		flagSet.StringVarP(&opts.Mode, "mode", "m", config.ModeAllPairs, "RPQ evaluator: allpairs, union or persource"),
		flagSet.StringVarP(&opts.Grammar, "grammar", "c", "", "CFPQ grammar file (one production per line)"),
		flagSet.StringVarP(&opts.Algorithm, "algorithm", "a", config.AlgoHellings, "CFPQ evaluator: hellings or matrix"),
		flagSet.StringVar(&opts.Variable, "variable", "", "CFPQ variable to report (default: the grammar's start)"),
		flagSet.StringSliceVarP(&opts.Sources, "sources", "u", nil, "source vertices U (comma-separated; empty = all)", goflags.CommaSeparatedStringSliceOptions),
		flagSet.StringSliceVarP(&opts.Finals, "finals", "v", nil, "final vertices V (comma-separated; empty = all)", goflags.CommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVar(&opts.Verbose, "verbose", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	return opts
}

func main() {
	opts := parseFlags()

	switch {
	case opts.Script != "":
		runScript(opts.Script)
	case opts.Session != "":
		runSession(opts.Session)
	case opts.Graph != "":
		runDirect(opts)
	default:
		gologger.Fatal().Msgf("nothing to do: pass -script, -session, or -graph with -regex/-grammar")
	}
}

func runScript(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		gologger.Fatal().Msgf("failed to read script: %s", err)
	}
	in := lang.New(os.Stdout)
	if err := in.Run(string(src)); err != nil {
		gologger.Fatal().Msgf("script failed: %s", err)
	}
}

func runSession(path string) {
	s, err := config.Load(path)
	if err != nil {
		gologger.Fatal().Msgf("bad session: %s", err)
	}
	g, err := loader.LoadGraphFile(s.Graph)
	if err != nil {
		gologger.Fatal().Msgf("failed to load graph: %s", err)
	}
	gologger.Verbose().Msgf("loaded %s: %d vertices, %d edges", s.Graph, g.VertexCount(), g.EdgeCount())
	for i, q := range s.Queries {
		gologger.Verbose().Msgf("query %d: %s", i, q.Kind)
		runQuery(g, q)
	}
}

func runDirect(opts *options) {
	g, err := loader.LoadGraphFile(opts.Graph)
	if err != nil {
		gologger.Fatal().Msgf("failed to load graph: %s", err)
	}
	q := config.Query{
		Regex:     opts.Regex,
		Mode:      opts.Mode,
		Grammar:   opts.Grammar,
		Algorithm: opts.Algorithm,
		Variable:  opts.Variable,
		Sources:   []string(opts.Sources),
		Finals:    []string(opts.Finals),
	}
	switch {
	case opts.Regex != "" && opts.Grammar != "":
		gologger.Fatal().Msgf("-regex and -grammar are mutually exclusive")
	case opts.Regex != "":
		q.Kind = config.KindRPQ
	case opts.Grammar != "":
		q.Kind = config.KindCFPQ
	default:
		gologger.Fatal().Msgf("pass -regex or -grammar alongside -graph")
	}
	runQuery(g, q)
}

func runQuery(g *pgraph.Graph, q config.Query) {
	switch q.Kind {
	case config.KindRPQ:
		runRPQ(g, q)
	case config.KindCFPQ:
		runCFPQ(g, q)
	default:
		gologger.Fatal().Msgf("unknown query kind %q", q.Kind)
	}
}

func runRPQ(g *pgraph.Graph, q config.Query) {
	switch q.Mode {
	case config.ModeAllPairs:
		pairs, err := rpq.AllPairs(q.Regex, g, q.Sources, q.Finals)
		if err != nil {
			gologger.Fatal().Msgf("rpq failed: %s", err)
		}
		emitPairs(pairs)
	case config.ModeUnion:
		vs, err := rpq.MultiSourceUnion(q.Regex, g, q.Sources, q.Finals)
		if err != nil {
			gologger.Fatal().Msgf("rpq failed: %s", err)
		}
		for _, v := range vs {
			os.Stdout.WriteString(v + "\n")
		}
	case config.ModePerSource:
		pairs, err := rpq.MultiSourcePerSource(q.Regex, g, q.Sources, q.Finals)
		if err != nil {
			gologger.Fatal().Msgf("rpq failed: %s", err)
		}
		emitPairs(pairs)
	default:
		gologger.Fatal().Msgf("unknown rpq mode %q", q.Mode)
	}
}

func runCFPQ(g *pgraph.Graph, q config.Query) {
	cfg, err := loader.LoadCFGFile(q.Grammar)
	if err != nil {
		gologger.Fatal().Msgf("failed to load grammar: %s", err)
	}
	wcnf, err := grammar.ToWCNF(cfg)
	if err != nil {
		gologger.Fatal().Msgf("grammar normalization failed: %s", err)
	}

	var res *cfpq.Result
	switch q.Algorithm {
	case config.AlgoHellings:
		res, err = cfpq.Hellings(wcnf, g)
	case config.AlgoMatrix:
		res, err = cfpq.Matrix(wcnf, g)
	default:
		gologger.Fatal().Msgf("unknown cfpq algorithm %q", q.Algorithm)
	}
	if err != nil {
		gologger.Fatal().Msgf("cfpq failed: %s", err)
	}

	v := grammar.Variable(q.Variable)
	if v == "" {
		v = cfg.Start
	}
	emitPairs(filterPairs(res.Pairs(v), q.Sources, q.Finals))
}

// filterPairs restricts pairs to U x V; a nil slice means "all".
func filterPairs(pairs [][2]string, sources, finals []string) [][2]string {
	if sources == nil && finals == nil {
		return pairs
	}
	member := func(vs []string, x string) bool {
		if vs == nil {
			return true
		}
		for _, v := range vs {
			if v == x {
				return true
			}
		}
		return false
	}
	out := pairs[:0:0]
	for _, p := range pairs {
		if member(sources, p[0]) && member(finals, p[1]) {
			out = append(out, p)
		}
	}
	return out
}

func emitPairs(pairs [][2]string) {
	for _, p := range pairs {
		os.Stdout.WriteString(p[0] + "\t" + p[1] + "\n")
	}
}
