// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	tree    keyTree
	format  string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "build a balanced search tree from keys and query it"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "type, t",
			Value: "int",
			Usage: " element `TYPE` of the keys [int|string]",
		},
		cli.StringFlag{
			Name:  "format, f",
			Value: "json",
			Usage: " output `FORMAT` [json|yaml]",
		},
		cli.StringFlag{
			Name:  "file",
			Value: "",
			Usage: " insert keys from `FILE`, one per line",
		},
		cli.StringSliceFlag{
			Name:  "key, k",
			Usage: " insert `KEY` before running the command",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "insert",
			Usage:     "insert keys and display the resulting tree size and height",
			ArgsUsage: "KEY...",
			Action:    runInsert,
		},
		{
			Name:      "contains",
			Usage:     "check whether keys are present",
			ArgsUsage: "KEY...\n   (* = at least one KEY required)",
			Action:    runContains,
		},
		{
			Name:   "min",
			Usage:  "display the smallest key",
			Action: runMin,
		},
		{
			Name:   "max",
			Usage:  "display the largest key",
			Action: runMax,
		},
		{
			Name:      "successor",
			Usage:     "display the smallest key strictly greater than each value",
			ArgsUsage: "VALUE...\n   (* = at least one VALUE required)",
			Action:    runSuccessor,
		},
		{
			Name:   "traverse",
			Usage:  "display pre-order, in-order and post-order traversals",
			Action: runTraverse,
		},
		{
			Name:  "print",
			Usage: "display the tree sideways, right subtree uppermost",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "no-heights, n",
					Usage: " omit the node heights",
				},
			},
			Action: runPrint,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// build the tree from the global keys
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		format, err := checkFormat(c.GlobalString("format"))
		if nil != err {
			return err
		}

		tree, err := newKeyTree(c.GlobalString("type"))
		if nil != err {
			return err
		}

		if file := c.GlobalString("file"); "" != file {
			if verbose {
				fmt.Fprintf(e, "reading keys from: %s\n", file)
			}
			keys, err := readKeys(file)
			if nil != err {
				return err
			}
			if err := insertKeys(tree, keys); nil != err {
				return err
			}
		}

		if err := insertKeys(tree, c.GlobalStringSlice("key")); nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "size: %d  height: %d\n", tree.size(), tree.height())
		}

		c.App.Metadata["config"] = &metadata{
			tree:    tree,
			format:  format,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	return app
}
