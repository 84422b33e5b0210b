// Command ore is the launcher: it builds a clean universe, optionally runs
// a bootloader module to configure the standard library, then runs the
// module named on the command line to completion.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/UnizaMatBre/ore-vm"
	"github.com/UnizaMatBre/ore-vm/primitives"
)

func main() {
	configPath := flag.String("config", "", "path to an optional YAML launcher config")
	flag.Parse()

	cfg := ore.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = ore.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ore: reading config: %v\n", err)
			os.Exit(1)
		}
	}

	universe := ore.NewUniverse()
	primitives.Install(universe)

	exists, err := ore.StatBootloader(cfg.Bootloader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ore: checking bootloader: %v\n", err)
		os.Exit(1)
	}
	if exists {
		if err := runModuleFile(universe, cfg.Bootloader, cfg.StackSize, cfg.Trace); err != nil {
			fmt.Fprintf(os.Stderr, "ore: bootloader: %v\n", err)
			os.Exit(1)
		}
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ore [-config path] <module>")
		os.Exit(1)
	}
	if err := runModuleFile(universe, flag.Arg(0), cfg.StackSize, cfg.Trace); err != nil {
		fmt.Fprintf(os.Stderr, "ore: %v\n", err)
		os.Exit(1)
	}
}

// runModuleFile loads path as a bytecode module, wraps it in a top-level
// method activation parented to the lobby, and runs it to completion as its
// own process.
func runModuleFile(universe *ore.Universe, path string, defaultStackSize int64, trace bool) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	code, err := ore.Deserialize(universe, data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	activation := universe.NewObject()
	activation.SetCode(code)
	activation.AddSlot(ore.MeSlotName, ore.SlotKind{IsParent: true}, universe.Lobby)

	frame := universe.NewFrameWithCodeStackUsage(activation)
	if frame.Stack.Len() == 0 && defaultStackSize > 0 {
		frame = universe.NewFrameWithStackSize(defaultStackSize, activation)
	}
	process := universe.NewProcess(frame)
	interp := ore.NewInterpreter(universe, process)

	if !trace {
		interp.ExecuteAll()
		return nil
	}
	for !process.HasFinished(universe.None) {
		active := process.PeekFrame()
		op, param, ok := active.GetCurrentInstruction()
		if ok {
			fmt.Fprintf(os.Stderr, "ore: trace pc=%d op=%#02x param=%#02x\n", active.InstrIndex, op, param)
		}
		interp.Step()
	}
	return nil
}
