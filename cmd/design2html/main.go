/*
Command design2html compiles a design document into HTML markup.

Usage:

    design2html [-config file.yaml] [flags] [file.json]

The input is read from file.json, or from stdin if no file is given. It may
be a whole design file ({"document": …}), a nodes response
({"nodes": {"<id>": {"document": …}}}) or a single node. Flag -node selects
a node by id; without it the document root (or the first node of a nodes
response) is compiled.

Image paints are resolved through an optional image map (flag -images), as
returned by the design tool's image export endpoint.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/design2html/design"
	"github.com/npillmayer/design2html/emit"
	"github.com/npillmayer/design2html/emit/emitdbg"
	"github.com/npillmayer/design2html/resolve"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// tracer traces with key 'design2html.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("design2html.cmd")
}

var traceKeys = []string{
	"design2html.cmd",
	"design2html.design",
	"design2html.style",
	"design2html.resolve",
	"design2html.emit",
	"design2html.tree",
}

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprintln(os.Stderr, "Usage: design2html [flags] [file.json]")
		_, _ = fmt.Fprintln(os.Stderr, "")
		_, _ = fmt.Fprintln(os.Stderr, "Compiles a design document (file, nodes response or single node) into")
		_, _ = fmt.Fprintln(os.Stderr, "HTML with inline styles. Reads stdin if no file is given.")
		_, _ = fmt.Fprintln(os.Stderr, "")
		flag.PrintDefaults()
	}
	nodeFlag := flag.String("node", "", "id of the node to compile")
	imagesFlag := flag.String("images", "", "JSON file mapping image references to URLs")
	fontFlag := flag.String("font", "", "default font family, not emitted (default \"SF Pro Text\")")
	gapFlag := flag.Int("gap", 0, "ceiling for item spacing to be emitted as gap (default 50)")
	treeFlag := flag.Bool("tree", false, "print the markup tree instead of markup")
	dotFlag := flag.Bool("dot", false, "print a GraphViz diagram of the markup tree instead of markup")
	traceFlag := flag.String("trace", "", "trace level: Error, Info or Debug (default Error)")
	configFlag := flag.String("config", "", "YAML file with configuration settings")
	flag.Parse()

	if flag.NArg() > 1 {
		fatal(fmt.Errorf("design2html: at most one input file expected"))
	}
	conf, err := configure(*configFlag, *fontFlag, *gapFlag, *traceFlag)
	if err != nil {
		fatal(err)
	}
	if err := setupTracing(conf); err != nil {
		fatal(err)
	}

	in := io.Reader(os.Stdin)
	if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		in = f
	}
	root, err := design.Decode(in, *nodeFlag)
	if err != nil {
		fatal(err)
	}
	tracer().Debugf("design tree =\n%s", design.Dump(root))

	images, err := loadImages(*imagesFlag)
	if err != nil {
		fatal(err)
	}
	compiler := emit.NewCompiler(resolve.OptionsFromConfig(conf), images)
	out := bufio.NewWriter(os.Stdout)
	switch {
	case *treeFlag:
		el, frames := compiler.Build(root)
		_, err = fmt.Fprintln(out, emitdbg.Print(el))
		if err == nil {
			_, err = fmt.Fprintln(out, emitdbg.PrintFrames(frames))
		}
	case *dotFlag:
		el, _ := compiler.Build(root)
		err = emitdbg.ToGraphViz(el, out, nil)
	default:
		if err = compiler.Render(out, root); err == nil {
			_, err = fmt.Fprintln(out)
		}
	}
	if err == nil {
		err = out.Flush()
	}
	if err != nil {
		fatal(err)
	}
}

// configure creates a koanf-backed configuration. Settings from the
// configuration file, if any, override defaults; command line flags override
// both.
func configure(configFile string, font string, gap int, level string) (*koanfadapter.KConf, error) {
	conf := koanfadapter.New(nil, "", nil)
	conf.InitDefaults()
	conf.Set("tracelevel.root", "Error")
	if configFile != "" {
		if err := loadConfigFile(conf, configFile); err != nil {
			return nil, err
		}
	}
	if font = strings.TrimSpace(font); font != "" {
		conf.Set(resolve.KeyDefaultFontFamily, font)
	}
	if gap > 0 {
		conf.Set(resolve.KeyGapCeiling, gap)
	}
	if level != "" {
		conf.Set("tracelevel.root", level)
		for _, key := range traceKeys {
			conf.Set("tracelevel."+key, level)
		}
	}
	return conf, nil
}

// setupTracing routes all tracers to the Go standard logger.
func setupTracing(conf schuko.Configuration) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func loadImages(path string) (emit.ImageMap, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	images, err := design.DecodeImageMap(f)
	if err != nil {
		return nil, fmt.Errorf("image map %s: %w", path, err)
	}
	return emit.ImageMap(images), nil
}

func fatal(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
