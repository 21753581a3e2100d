//go:build windows

package process_windows

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"winmem/process"
	"winmem/process_memory"
)

const (
	maxModules       = 1024
	fileNameCapacity = 1024
)

// Module identifies one module loaded in a remote process. It is only
// meaningful together with the Process it was enumerated from, which every
// query takes explicitly; a Module carries no reference back to its parent
// and no independent lifetime. It goes stale silently if the target
// unloads the module or the owning handle is closed, at which point
// queries simply fail.
//
// Name, file name and module info are cached on first successful query and
// never invalidated.
type Module struct {
	handle windows.Handle

	name     *string
	fileName *string
	info     *process.ModuleInfo
}

// Modules enumerates the modules loaded in the target, capped at 1024.
func (p *Process) Modules() ([]*Module, error) {
	if p.handle == 0 {
		return nil, process.ErrProcessNotOpen
	}

	handles := make([]windows.Handle, maxModules)
	var needed uint32
	cb := uint32(uintptr(maxModules) * unsafe.Sizeof(handles[0]))
	if err := windows.EnumProcessModulesEx(p.handle, &handles[0], cb, &needed, windows.LIST_MODULES_ALL); err != nil {
		return nil, fmt.Errorf("EnumProcessModulesEx: %w", err)
	}

	count := int(uintptr(needed) / unsafe.Sizeof(handles[0]))
	if count > maxModules {
		count = maxModules
	}
	modules := make([]*Module, count)
	for i := range modules {
		modules[i] = &Module{handle: handles[i]}
	}
	return modules, nil
}

// MainModule returns the first enumerated module, the executable image
// itself.
func (p *Process) MainModule() (*Module, error) {
	modules, err := p.Modules()
	if err != nil {
		return nil, err
	}
	if len(modules) == 0 {
		return nil, fmt.Errorf("process %d: no modules enumerated", p.pid)
	}
	return modules[0], nil
}

// Name returns the module's base name, cached after the first successful
// decode.
func (m *Module) Name(p *Process) (string, error) {
	if m.name != nil {
		return *m.name, nil
	}
	if p.handle == 0 {
		return "", process.ErrProcessNotOpen
	}

	buf := make([]uint16, nameCapacity)
	if err := windows.GetModuleBaseName(p.handle, m.handle, &buf[0], nameCapacity); err != nil {
		return "", fmt.Errorf("GetModuleBaseName: %w", err)
	}
	name, err := process_memory.DecodeUTF16(buf)
	if err != nil {
		return "", err
	}
	m.name = &name
	return name, nil
}

// FileName returns the full path of the module's file, cached after the
// first successful decode.
func (m *Module) FileName(p *Process) (string, error) {
	if m.fileName != nil {
		return *m.fileName, nil
	}
	if p.handle == 0 {
		return "", process.ErrProcessNotOpen
	}

	buf := make([]uint16, fileNameCapacity)
	if err := windows.GetModuleFileNameEx(p.handle, m.handle, &buf[0], fileNameCapacity); err != nil {
		return "", fmt.Errorf("GetModuleFileNameEx: %w", err)
	}
	name, err := process_memory.DecodeUTF16(buf)
	if err != nil {
		return "", err
	}
	m.fileName = &name
	return name, nil
}

// Info returns the module's base address, image size and entry point,
// queried atomically from GetModuleInformation and cached on first
// success.
func (m *Module) Info(p *Process) (process.ModuleInfo, error) {
	if m.info != nil {
		return *m.info, nil
	}
	if p.handle == 0 {
		return process.ModuleInfo{}, process.ErrProcessNotOpen
	}

	var mi windows.ModuleInfo
	if err := windows.GetModuleInformation(p.handle, m.handle, &mi, uint32(unsafe.Sizeof(mi))); err != nil {
		return process.ModuleInfo{}, fmt.Errorf("GetModuleInformation: %w", err)
	}
	info := process.ModuleInfo{
		Base:       process.Address(mi.BaseOfDll),
		Size:       mi.SizeOfImage,
		EntryPoint: process.Address(mi.EntryPoint),
	}
	m.info = &info
	return info, nil
}

// Base returns the module's load address.
func (m *Module) Base(p *Process) (process.Address, error) {
	info, err := m.Info(p)
	if err != nil {
		return 0, err
	}
	return info.Base, nil
}

// ImageSize returns the size of the mapped image in bytes.
func (m *Module) ImageSize(p *Process) (uint32, error) {
	info, err := m.Info(p)
	if err != nil {
		return 0, err
	}
	return info.Size, nil
}

// EntryPoint returns the module's entry point address.
func (m *Module) EntryPoint(p *Process) (process.Address, error) {
	info, err := m.Info(p)
	if err != nil {
		return 0, err
	}
	return info.EntryPoint, nil
}
