package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	xorpadVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	xorpad := NewAppBuild("xorpad", "cmd/xorpad", xorpadVersion)
	xorpad.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", xorpadVersion).
			CgoEnabled(false)
	})
	xorpad.Variant("windows", "amd64")
	xorpad.Variant("linux", "amd64")
	xorpad.Variant("linux", "arm64")
	xorpad.Variant("darwin", "amd64")
	xorpad.Variant("darwin", "arm64")
	b.ImportApp(xorpad)

	b.Execute()
}
