//go:build windows

// Demonstrates the toolkit against a live process: open notepad, inspect
// its modules, walk memory and round-trip an allocation.
package main

import (
	"fmt"

	"winmem/hexdump"
	"winmem/process"
	"winmem/process_memory"
	"winmem/process_windows"
)

func main() {
	procs, err := process_windows.FindProcesses("notepad.exe")
	if err != nil || len(procs) == 0 {
		fmt.Println("no notepad.exe running:", err)
		return
	}
	p := procs[0]
	defer p.Close()
	for _, extra := range procs[1:] {
		extra.Close()
	}

	name, _ := p.Name()
	is64, err := p.Is64Bit()
	if err != nil {
		fmt.Println("bitness:", err)
		return
	}
	fmt.Printf("%s (pid %d, 64-bit=%v)\n", name, p.Pid(), is64)

	mod, err := p.MainModule()
	if err != nil {
		fmt.Println("main module:", err)
		return
	}
	info, err := mod.Info(p)
	if err != nil {
		fmt.Println("module info:", err)
		return
	}
	fmt.Printf("image base %#x, size %#x, entry %#x\n",
		uint64(info.Base), info.Size, uint64(info.EntryPoint))

	// The DOS header of the image, through the typed layer.
	magic, err := process_memory.ReadValue[uint16](p, info.Base)
	if err == nil {
		fmt.Printf("DOS magic: %#x\n", magic)
	}

	data, err := p.ReadMemory(info.Base, 64)
	if err == nil {
		fmt.Print(hexdump.DumpWithOptions(data, hexdump.Options{
			BytesPerLine: 16,
			GroupSize:    8,
			ShowASCII:    true,
			BaseAddress:  uint64(info.Base),
		}))
	}

	// Round-trip through a fresh allocation in the target.
	region, err := p.Allocate(4096)
	if err != nil {
		fmt.Println("allocate:", err)
		return
	}
	defer p.Free(region)

	if err := process_memory.WriteValue(p, region, uint64(0xFEEDFACECAFEBEEF)); err != nil {
		fmt.Println("write:", err)
		return
	}
	back, err := process_memory.ReadValue[uint64](p, region)
	if err != nil {
		fmt.Println("read back:", err)
		return
	}
	fmt.Printf("round-trip at %#x: %#x\n", uint64(region), back)

	if str, err := process_memory.ReadString(p, info.Base+0x4E, 16, process.StringUTF8); err == nil {
		fmt.Printf("DOS stub text: %q\n", str)
	}
}
