package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/nevisdale/nescore/internal/bus"
	"github.com/nevisdale/nescore/internal/cpu"
	"github.com/nevisdale/nescore/internal/nes"
	"github.com/nevisdale/nescore/internal/ui"
	"github.com/pkg/profile"
)

var (
	romPath     = flag.String("rom", "", "path to an iNES file")
	frames      = flag.Uint64("frames", 60, "frames to run without a window")
	withUI      = flag.Bool("ui", false, "open the debug window")
	profileMode = flag.String("profile", "", "write a cpu or mem profile to the working directory")
	unofficial  = flag.Bool("unofficial", false, "enable the stable undocumented opcodes")
	nmos        = flag.Bool("nmos", false, "run a NMOS 6502 core with decimal mode")
	timing      = flag.String("timing", "", "force ntsc or pal timing, the header decides by default")
	entry       = flag.Int("entry", -1, "start at this address instead of the RESET vector")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	if err := run(); err != nil {
		glog.Flush()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if *romPath == "" {
		return errors.New("-rom is required")
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", *profileMode)
	}

	cart, err := nes.NewCartFromFile(*romPath)
	if err != nil {
		return fmt.Errorf("couldn't load the cartridge: %w", err)
	}

	opts := []nes.Option{nes.WithUnofficialOpcodes(*unofficial)}
	if *nmos {
		opts = append(opts, nes.WithRevision(cpu.NMOS6502))
	}
	switch *timing {
	case "":
	case "ntsc":
		opts = append(opts, nes.WithTiming(bus.NTSC))
	case "pal":
		opts = append(opts, nes.WithTiming(bus.PAL))
	default:
		return fmt.Errorf("unknown timing %q", *timing)
	}

	console, err := nes.New(cart, opts...)
	if err != nil {
		return fmt.Errorf("couldn't create the console: %w", err)
	}
	if *entry >= 0 {
		console.SetPC(uint16(*entry))
	}

	if *withUI {
		return ui.RunUI(ui.New(console))
	}

	err = console.RunUntil(func(c *nes.Console) bool {
		return c.Frame() >= *frames
	})
	fmt.Println(console.Snapshot())
	if err != nil {
		var opErr *cpu.UnimplementedOpcodeError
		if errors.As(err, &opErr) {
			fmt.Println(console.Disassemble(opErr.Addr, opErr.Addr)[opErr.Addr])
		}
		return err
	}
	return nil
}
