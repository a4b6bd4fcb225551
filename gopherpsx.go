// This file is part of GopherPSX.
//
// GopherPSX is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherPSX is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherPSX.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherpsx/hardware"
	"github.com/jetsetilly/gopherpsx/hardware/cpu/cop0"
	"github.com/jetsetilly/gopherpsx/hardware/instance"
	"github.com/jetsetilly/gopherpsx/logger"
	"github.com/jetsetilly/gopherpsx/modalflag"
	"github.com/jetsetilly/gopherpsx/prefs"
	"github.com/jetsetilly/gopherpsx/script"
	"github.com/jetsetilly/gopherpsx/statsview"
	"github.com/jetsetilly/gopherpsx/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}

	err := launch(md, os.Args[1:])
	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func launch(md *modalflag.Modes, args []string) error {
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "SCRIPT", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	switch md.Mode() {
	case "RUN":
		return run(md)
	case "SCRIPT":
		return runScript(md)
	case "VERSION":
		return showVersion(md)
	}

	return nil
}

// flags common to all modes
type common struct {
	bios      *string
	strict    *bool
	prefs     *string
	log       *bool
	statsview *bool
}

func addCommon(md *modalflag.Modes) common {
	return common{
		bios:      md.AddString("bios", "", "BIOS image (512KB)"),
		strict:    md.AddBool("strict", false, "unmapped bus access is an error"),
		prefs:     md.AddString("prefs", "", "preferences for this run (eg. \"hardware.openbus::0; hardware.catchup::access\")"),
		log:       md.AddBool("log", false, "echo the emulation log to stdout"),
		statsview: md.AddBool("statsview", false, "run the runtime statistics server"),
	}
}

// create the emulation from the common flags. the returned function should be
// called when the emulation is no longer needed
func (c common) create(md *modalflag.Modes, label instance.Label) (*hardware.PSX, func(), error) {
	if *c.prefs != "" {
		prefs.PushCommandLineStack(*c.prefs)
	}

	env, err := instance.NewInstance(label, nil)

	if *c.prefs != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
		}
	}

	if err != nil {
		return nil, nil, err
	}

	if *c.strict {
		if err := env.Prefs.StrictBus.Set(true); err != nil {
			return nil, nil, err
		}
	}

	psx, err := hardware.NewPSX(env)
	if err != nil {
		return nil, nil, err
	}

	if *c.bios != "" {
		data, err := os.ReadFile(*c.bios)
		if err != nil {
			return nil, nil, err
		}
		if err := psx.LoadBIOS(data); err != nil {
			return nil, nil, err
		}
	}

	if *c.log {
		env.Log.SetEcho(logger.EchoWriter(os.Stdout), false)
		fmt.Fprintf(md.Output, "bus map:\n%s", psx.Mem.Summary())
	}

	stop := func() {}
	if *c.statsview {
		stop = statsview.Launch(md.Output, "")
	}

	return psx, stop, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	steps := md.AddInt("steps", 0, "number of steps to run. zero runs until interrupted")
	dump := md.AddString("memviz", "", "write a graph of the CPU state to file after running")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	psx, stop, err := c.create(md, instance.Main)
	if err != nil {
		return err
	}
	defer stop()

	if *steps > 0 {
		err = psx.RunForSteps(*steps)
	} else {
		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)
		defer signal.Stop(intChan)

		var performanceFilter int
		err = psx.Run(func() (bool, error) {
			performanceFilter++
			if performanceFilter < hardware.PerformanceBrake {
				return true, nil
			}
			performanceFilter = 0
			select {
			case <-intChan:
				return false, nil
			default:
			}
			return true, nil
		})
	}

	fmt.Fprintln(md.Output, psx)
	fmt.Fprintf(md.Output, "emulated time: %v\n", psx.Elapsed())
	fmt.Fprintln(md.Output, psx.CPU)
	fmt.Fprintln(md.Output, psx.CPU.COP0)

	if psx.DMA.Faults.Len() > 0 {
		fmt.Fprintln(md.Output, "dma faults:")
		psx.DMA.Faults.WriteLog(md.Output)
	}

	if *dump != "" {
		if derr := writeGraph(*dump, psx); derr != nil {
			return derr
		}
	}

	return err
}

// the state written by the -memviz flag. copied from the emulation so that
// the graph does not include the environment and the bus
type cpuGraph struct {
	PC        uint32
	HI        uint32
	LO        uint32
	Registers [32]uint32
	COP0      cop0Graph
	Last      string
}

type cop0Graph struct {
	SR       uint32
	Cause    uint32
	EPC      uint32
	BadVAddr uint32
}

func writeGraph(filename string, psx *hardware.PSX) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	g := &cpuGraph{
		PC: psx.CPU.PC(),
		HI: psx.CPU.HI(),
		LO: psx.CPU.LO(),
		COP0: cop0Graph{
			SR:       psx.CPU.COP0.Status(),
			Cause:    psx.CPU.COP0.Cause(),
			EPC:      psx.CPU.COP0.EPC(),
			BadVAddr: psx.CPU.COP0.Read(cop0.BadVAddr),
		},
		Last: psx.CPU.LastResult.String(),
	}
	for i := range g.Registers {
		g.Registers[i] = psx.CPU.Register(i)
	}

	memviz.Map(f, g)

	return nil
}

func runScript(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one script file is required")
	}

	psx, stop, err := c.create(md, instance.Script)
	if err != nil {
		return err
	}
	defer stop()

	sc := script.NewScript(psx, md.Output)
	defer sc.Close()

	return sc.RunFile(md.GetArg(0))
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}
