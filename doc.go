/*
Package ipcli is an interactive editor for two-color raster bitmaps driven by a small
textual command language.

A session owns one image. Each command line is parsed into a typed command, validated,
and applied to the image; accepted commands are recorded so the whole session can be
dumped as a script and replayed later against a fresh canvas.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/ipcli"
	)

	func main() {
		ed, err := ipcli.New(10, 10, false)
		if err != nil {
			log.Fatal(err)
		}

		ed.Execute("draw_rectangle 1 1 5 3 t")
		ed.Execute("dco 5 5 3 t")

		fmt.Println(ed.Render())
		fmt.Print(ed.Dump())
	}

# Scripts

A script is a sequence of commands separated by ";". Editor.Dump produces one command
per line, each terminated by ";", and Editor.Replay runs such a script without adding
its commands to the history.

The interactive loop, stores and CLI live in the pkg/runner, pkg/adapters and cmd/ipcli
packages respectively.
*/
package ipcli
