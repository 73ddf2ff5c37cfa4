package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"
	"golang.org/x/net/html"

	"github.com/opendocset/xmltree"
	"github.com/opendocset/xmltree/encoding"
	"github.com/opendocset/xmltree/node"
)

type cmdopts struct {
	Encoding string `long:"encoding"`
	Body     bool   `long:"body"`
	Version  bool   `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("xmltree-dump: using xmltree version %s\n", xmltree.Version)
}

func showUsage() {
	fmt.Printf(`Usage : xmltree-dump [options] files ...
	Parse the input files, import them into the tree model, and
	write the serialized markup of the result
	--encoding : charset of the input documents
	--body     : dump only the subtree under <body>
	--version  : display the version of the tree library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	switch {
	case len(args) > 0: // filename present
		for _, f := range args {
			fh, err := os.Open(f)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s\n", err)
				return 1
			}
			err = dump(&opts, fh)
			fh.Close()
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s\n", err)
				return 1
			}
		}
	case !isatty.IsTerminal(os.Stdin.Fd()):
		if err := dump(&opts, os.Stdin); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
	default:
		showUsage()
		return 1
	}
	return 0
}

func dump(opts *cmdopts, in io.Reader) error {
	if opts.Encoding != "" {
		e := encoding.Load(opts.Encoding)
		if e == nil {
			return fmt.Errorf("unknown encoding %q", opts.Encoding)
		}
		in = e.NewDecoder().Reader(in)
	}

	doc, err := html.Parse(in)
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	root, err := xmltree.FromHTMLNode(doc)
	if err != nil {
		return fmt.Errorf("importing parsed tree: %w", err)
	}

	if opts.Body {
		if b := findElement(root, "body"); b != nil {
			root = b
		}
	}

	var d xmltree.Dumper
	if err := d.DumpNode(os.Stdout, root); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

func findElement(n node.Node, name string) node.Node {
	if n.Type() == node.ElementNodeType && n.LocalName() == name {
		return n
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}
