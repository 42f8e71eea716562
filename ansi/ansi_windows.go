//go:build windows

package ansi

import (
	"sync"

	"golang.org/x/sys/windows"
)

var (
	ansiErr  error
	ansiOnce sync.Once
)

// EnableANSI turns on virtual terminal processing for the console so that
// styled prompts render instead of printing raw escape sequences. It is
// safe to call repeatedly; only the first call touches the console.
func EnableANSI() error {
	ansiOnce.Do(func() {
		ansiErr = realEnableANSI()
	})
	return ansiErr
}

func realEnableANSI() error {
	// https://docs.microsoft.com/en-us/windows/console/console-virtual-terminal-sequences
	modes := []struct {
		handle uint32
		flag   uint32
	}{
		{windows.STD_OUTPUT_HANDLE, windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING},
		{windows.STD_INPUT_HANDLE, windows.ENABLE_VIRTUAL_TERMINAL_INPUT},
	}
	for _, m := range modes {
		if err := addConsoleMode(m.handle, m.flag); err != nil {
			return err
		}
	}
	return nil
}

func addConsoleMode(stdhandle uint32, modeFlag uint32) error {
	handle, err := windows.GetStdHandle(stdhandle)
	if err != nil {
		return err
	}
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return err
	}
	if mode&modeFlag == modeFlag {
		return nil
	}
	return windows.SetConsoleMode(handle, mode|modeFlag)
}
