/*
Package houtveilig generates the icon set of the HoutVeilig web app: a white
stylized tree over a green gradient, with an orange warning triangle holding a
white exclamation mark at its foot.

Every icon is drawn procedurally, one pixel at a time, and written as a
non-interlaced 8 bit RGBA PNG file. The output only depends on the size and
the palette, so regenerating an icon yields a byte-identical file.

The package provides a command line interface, which writes the default sizes
into ./icons when invoked without flags:

	$ houtveilig-icons --help

The generator can also be used as a library:

	package main

	import (
		"log"

		"github.com/Polder-Labs/houtveilig"
	)

	func main() {
		cfg := houtveilig.DefaultConfig()
		cfg.OutputDir = "static/icons"

		proc, err := houtveilig.NewProcessor(cfg, nil)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := houtveilig.NewEmitter(cfg, nil).Run(proc); err != nil {
			log.Fatalf("Error generating the icons: %v", err)
		}
	}
*/
package houtveilig
