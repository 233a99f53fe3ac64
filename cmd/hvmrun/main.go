// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Command hvmrun injects a named fixture into the interaction-combinator
// engine, normalizes it, and reports interaction count, node count, wall
// time, and throughput.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/hvmcore/hvm/engine"
	"github.com/hvmcore/hvm/fixture"
)

var logger = log.New(os.Stdout, "", 0)

var fixtures = map[string]func() []engine.Term{
	"p24": fixture.P24,
}

func fatalf(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}

func main() {
	def := defaultRunConfig()

	var (
		fixtureFlag  string
		arenaFlag    uint64
		stackFlag    uint64
		configPath   string
		configInline string
		dumpFlag     string
		compressFlag bool
		verboseFlag  bool
	)
	flag.StringVar(&fixtureFlag, "fixture", def.Fixture, "fixture to normalize (registered: p24)")
	flag.Uint64Var(&arenaFlag, "arena", uint64(def.ArenaCapacity), "arena capacity, in term cells")
	flag.Uint64Var(&stackFlag, "stack", uint64(def.StackCapacity), "traversal stack capacity, in frames")
	flag.StringVar(&configPath, "config", "", "YAML or JSON config file (overrides defaults; flags override it)")
	flag.StringVar(&configInline, "config-inline", "", "inline JSON config literal (overrides -config)")
	flag.StringVar(&dumpFlag, "dump", "", "write a heap dump to this path after normalizing")
	flag.BoolVar(&compressFlag, "compress", false, "zstd-compress the -dump output")
	flag.BoolVar(&verboseFlag, "verbose", false, "log progress to stdout")
	flag.Parse()

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	cfg := def
	if configPath != "" {
		if err := loadConfigFile(&cfg, configPath); err != nil {
			fatalf("%s", err)
		}
	}
	if configInline != "" {
		if err := loadConfigInline(&cfg, configInline); err != nil {
			fatalf("%s", err)
		}
	}
	// Flags explicitly passed on the command line win over whatever a
	// config file set, the same precedence cmd/sdb gives CLI overrides
	// of its YAML definitions.
	if explicit["fixture"] {
		cfg.Fixture = fixtureFlag
	}
	if explicit["arena"] {
		cfg.ArenaCapacity = uint32(arenaFlag)
	}
	if explicit["stack"] {
		cfg.StackCapacity = uint32(stackFlag)
	}
	if explicit["dump"] {
		cfg.Dump = dumpFlag
	}
	if explicit["compress"] {
		cfg.Compress = compressFlag
	}
	if explicit["verbose"] {
		cfg.Verbose = verboseFlag
	}

	build, ok := fixtures[cfg.Fixture]
	if !ok {
		fatalf("unknown fixture %q", cfg.Fixture)
	}

	e := cfg.options().New()
	if cfg.Verbose {
		logger.Printf("run %s: fixture=%s arena=%d stack=%d", e.RunID, cfg.Fixture, cfg.ArenaCapacity, cfg.StackCapacity)
	}

	e.Inject(build())

	start := time.Now()
	_, itrs, nodes := e.Normalize()
	elapsed := time.Since(start)
	if cfg.Verbose {
		logger.Printf("run %s: signature=%016x", e.RunID, e.Signature())
	}

	if cfg.Dump != "" {
		if err := writeDump(e, cfg.Dump, cfg.Compress); err != nil {
			fatalf("writing dump: %s", err)
		}
	}

	mips := float64(itrs) / elapsed.Seconds() / 1e6
	logger.Printf("Itrs: %d", itrs)
	logger.Printf("Size: %d nodes", nodes)
	logger.Printf("Time: %.2f seconds", elapsed.Seconds())
	logger.Printf("MIPS: %.2f", mips)
}

func writeDump(e *engine.Engine, path string, compress bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if !compress {
		return e.Dump(f)
	}
	zw, err := zstd.NewWriter(f)
	if err != nil {
		return err
	}
	if err := e.Dump(zw); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
