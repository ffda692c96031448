// This file is part of Chips.
//
// Chips is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chips is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chips.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/chips/easyterm"
	"github.com/jetsetilly/chips/easyterm/ansi"
	"github.com/jetsetilly/chips/imageloader"
	"github.com/jetsetilly/chips/logger"
	"github.com/jetsetilly/chips/machine"
	"github.com/jetsetilly/chips/modalflag"
	"github.com/jetsetilly/chips/paths"
	"github.com/jetsetilly/chips/performance"
	"github.com/jetsetilly/chips/performance/limiter"
	"github.com/jetsetilly/chips/prefs"
	"github.com/jetsetilly/chips/script"
	"github.com/jetsetilly/chips/statsview"
	"github.com/jetsetilly/chips/version"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// number of times per second the machine is run in realtime mode
const realtimeRate = 50

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "STEP", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	fs := afero.NewOsFs()

	switch md.Mode() {
	case "RUN":
		err = run(md, fs)

	case "STEP":
		err = step(md, fs)

	case "PERFORMANCE":
		err = perform(md, fs)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// flags common to every mode that creates a machine.
type machineFlags struct {
	cpu    *string
	load   *string
	trace  *bool
	digest *bool
	prefs  *string

	// not used by every mode
	ticks *int
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		cpu:    md.AddString("cpu", "6502", "cpu family: 6502, z80"),
		load:   md.AddString("load", "0x0400", "load address of the image"),
		trace:  md.AddBool("trace", false, "record bus transactions"),
		digest: md.AddBool("digest", false, "produce a digest of all bus activity"),
		prefs:  md.AddString("prefs", "", "preferences to override. eg. \"machine.echo::true; machine.tracecapacity::0\""),
	}
}

// commandLinePrefs combines the -prefs flag with the machine flags that have
// been explicitly set on the command line. The result is in the form expected
// by prefs.PushCommandLineStack().
func (f machineFlags) commandLinePrefs(md *modalflag.Modes) string {
	s := []string{}
	if strings.TrimSpace(*f.prefs) != "" {
		s = append(s, strings.TrimSpace(*f.prefs))
	}

	md.Visit(func(flag string) {
		switch flag {
		case "cpu":
			s = append(s, fmt.Sprintf("machine.cpu::%s", *f.cpu))
		case "load":
			s = append(s, fmt.Sprintf("machine.origin::%s", *f.load))
		case "ticks":
			s = append(s, fmt.Sprintf("machine.ticks::%d", *f.ticks))
		case "trace":
			s = append(s, fmt.Sprintf("machine.trace::%v", *f.trace))
		case "digest":
			s = append(s, fmt.Sprintf("machine.digest::%v", *f.digest))
		}
	})

	return strings.Join(s, "; ")
}

// newMachine creates a machine according to the preferences file and the
// command line and loads the image named by the first remaining argument.
func newMachine(md *modalflag.Modes, fs afero.Fs, f machineFlags) (*machine.Machine, imageloader.Image, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, imageloader.Image{}, fmt.Errorf("program image required for %s mode", md)
	case 1:
	default:
		return nil, imageloader.Image{}, fmt.Errorf("too many arguments for %s mode", md)
	}

	prefs.PushCommandLineStack(f.commandLinePrefs(md))
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "chips", "unused preferences: %s", unused)
		}
	}()

	pth, err := paths.ResourcePath(fs, "", "preferences")
	if err != nil {
		return nil, imageloader.Image{}, err
	}

	p, err := machine.NewPreferences(fs, pth)
	if err != nil {
		return nil, imageloader.Image{}, err
	}

	if p.Echo.Get().(bool) {
		logger.SetEcho(logger.NewColorizer(md.Output))
	}

	m, err := machine.New(p)
	if err != nil {
		return nil, imageloader.Image{}, err
	}

	img, err := imageloader.Load(fs, md.GetArg(0), uint16(p.Origin.Get().(int)))
	if err != nil {
		return nil, imageloader.Image{}, err
	}

	err = m.Load(img)
	if err != nil {
		return nil, imageloader.Image{}, err
	}

	return m, img, nil
}

func run(md *modalflag.Modes, fs afero.Fs) error {
	md.NewMode()

	f := addMachineFlags(md)
	f.ticks = md.AddInt("ticks", 1000000, "number of ticks to run for")
	realtime := md.AddBool("realtime", false, "limit the machine to the nominal clock of the cpu")
	scriptFile := md.AddString("script", "", "lua script to control the machine")
	memvizFile := md.AddString("memviz", "", "write graphviz description of the cpu to file on exit")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	savePrefs := md.AddBool("saveprefs", false, "save preferences, including those given on the command line")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Fprintln(md.Output, "! stats server not available in this build")
		}
	}

	m, img, err := newMachine(md, fs, f)
	if err != nil {
		return err
	}

	if *scriptFile != "" {
		err = script.RunFile(fs, m, *scriptFile, md.Output)
		if err != nil {
			return err
		}
	} else {
		ticks := m.Prefs.Ticks.Get().(int)

		var n int
		if *realtime {
			n, err = runRealtime(m, ticks)
			if err != nil {
				return err
			}
		} else {
			n = m.Run(ticks)
		}

		fmt.Fprintf(md.Output, "%d ticks\n", n)
		if m.BreakHit() {
			fmt.Fprintln(md.Output, "breakpoint")
		}
		if m.Stopped() {
			fmt.Fprintln(md.Output, "cpu stopped")
		}
	}

	m.WriteRegisters(md.Output)

	if m.Digest != nil {
		fmt.Fprintf(md.Output, "digest: %s\n", m.Digest.Hash())
	}

	if m.Trace != nil {
		err = writeTrace(fs, m, img, md.Output)
		if err != nil {
			return err
		}
	}

	if *memvizFile != "" {
		err = writeMemviz(fs, m, *memvizFile)
		if err != nil {
			return err
		}
	}

	if *savePrefs {
		err = m.Prefs.Save()
		if err != nil {
			return err
		}
	}

	return nil
}

// runRealtime runs the machine in small slices, limited to the nominal clock
// rate of the cpu family.
func runRealtime(m *machine.Machine, ticks int) (int, error) {
	lim, err := limiter.NewLimiter(realtimeRate)
	if err != nil {
		return 0, err
	}
	defer lim.Stop()

	slice := int(performance.NominalClock(m.Family())) / realtimeRate

	var n int
	for n < ticks && !m.BreakHit() {
		lim.Wait()
		n += m.Run(min(slice, ticks-n))
	}

	return n, nil
}

func writeTrace(fs afero.Fs, m *machine.Machine, img imageloader.Image, output io.Writer) error {
	fn := fmt.Sprintf("%s.json", paths.UniqueFilename("trace", img.ShortName()))

	f, err := fs.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	err = m.Trace.WriteJSON(f)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "bus trace (%d transactions) written to %s\n", m.Trace.Len(), fn)
	return nil
}

func writeMemviz(fs afero.Fs, m *machine.Machine, fn string) error {
	f, err := fs.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	m.DumpState(f)
	return nil
}

func step(md *modalflag.Modes, fs afero.Fs) error {
	md.NewMode()

	f := addMachineFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("%s mode requires a terminal", md)
	}

	m, img, err := newMachine(md, fs, f)
	if err != nil {
		return err
	}

	var pt easyterm.Terminal
	err = pt.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer pt.CleanUp()

	err = pt.CBreakMode()
	if err != nil {
		return err
	}

	// ctrl-c is still delivered as a signal in cbreak mode. restore the
	// terminal before quitting
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)
	go func() {
		if _, ok := <-intChan; ok {
			_ = pt.CanonicalMode()
			fmt.Println()
			os.Exit(0)
		}
	}()

	pt.Print("%s%s%s\n", ansi.PenStyles["bold"], img, ansi.NormalPen)
	pt.Print("%sspace/enter%s step  %sd%s dump  %sr%s reset  %sq%s quit\n",
		ansi.Pens["cyan"], ansi.NormalPen,
		ansi.Pens["cyan"], ansi.NormalPen,
		ansi.Pens["cyan"], ansi.NormalPen,
		ansi.Pens["cyan"], ansi.NormalPen)

	printState := func(ticks int) {
		s := strings.Builder{}
		m.WriteRegisters(&s)
		pt.Print("%s%3d%s  %s", ansi.DimPens["yellow"], ticks, ansi.NormalPen, s.String())
		if m.Stopped() {
			pt.Print("%scpu stopped%s\n", ansi.Pens["red"], ansi.NormalPen)
		}
	}
	printState(0)

	for {
		k, err := pt.ReadKey()
		if err != nil {
			return err
		}

		switch k {
		case easyterm.KeySpace, easyterm.KeyLineFeed, easyterm.KeyCarriageReturn:
			printState(m.Step())
		case 'd':
			m.Mem.Dump(os.Stdout, m.PC(), 32)
		case 'r':
			m.Reset()
			pt.Print("%sreset%s\n", ansi.Pens["green"], ansi.NormalPen)
			printState(0)
		case 'q', easyterm.KeyEsc, easyterm.KeyEOT:
			if m.Trace != nil {
				_ = pt.CanonicalMode()
				return writeTrace(fs, m, img, md.Output)
			}
			return nil
		}
	}
}

func perform(md *modalflag.Modes, fs afero.Fs) error {
	md.NewMode()

	f := addMachineFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "produce profiling reports: cpu, mem, trace, all, none")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	m, _, err := newMachine(md, fs, f)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, fs, prf, m, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Fprintf(md.Output, "%s %s\n", v, r)
	} else {
		fmt.Fprintln(md.Output, version.String())
	}

	return nil
}
