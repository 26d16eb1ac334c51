//go:build windows

// Package windows is the real Win32 implementation of the KeyboardHook,
// SyntheticInputSink, and FocusObserver ports, translating
// original_source/src/main.rs and corrector.rs's raw WinAPI calls
// (SetWindowsHookExW, CallNextHookEx, SendInput, GetAsyncKeyState) into Go
// via golang.org/x/sys/windows — no cgo.
package windows

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/anselmlong/autocorrect/internal/platform"
)

const (
	whKeyboardLL = 13
	hcAction     = 0

	wmKeyDown    = 0x0100
	wmKeyUp      = 0x0101
	wmSysKeyDown = 0x0104
	wmSysKeyUp   = 0x0105

	llkhfInjected = 0x00000010

	inputKeyboard  = 1
	keyeventfKeyUp = 0x0002
	keyeventfUniCd = 0x0004
	keyeventfScncd = 0x0008
)

// kbdllhookstruct mirrors the Win32 KBDLLHOOKSTRUCT layout.
type kbdllhookstruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

var (
	user32             = windows.NewLazySystemDLL("user32.dll")
	procSetHook        = user32.NewProc("SetWindowsHookExW")
	procUnhook         = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHook   = user32.NewProc("CallNextHookEx")
	procGetMessage     = user32.NewProc("GetMessageW")
	procSendInput      = user32.NewProc("SendInput")
	procGetForeground  = user32.NewProc("GetForegroundWindow")
	procGetClassName   = user32.NewProc("GetClassNameW")
	procGetWindowThrd  = user32.NewProc("GetWindowThreadProcessId")
	procAttachThread   = user32.NewProc("AttachThreadInput")
	procGetCurrentThrd = windows.NewLazySystemDLL("kernel32.dll").NewProc("GetCurrentThreadId")
)

// Hook is a KeyboardHook backed by a WH_KEYBOARD_LL low-level hook.
type Hook struct {
	mu      sync.Mutex
	handle  uintptr
	handler func(platform.KeyEvent) platform.Decision
	done    chan struct{}
}

func NewHook() *Hook { return &Hook{} }

// Install registers the low-level keyboard hook and starts the message
// pump required to receive hook callbacks on this thread (spec §5: the
// hook delivers events on a dedicated OS thread that must not block).
func (h *Hook) Install(handler func(platform.KeyEvent) platform.Decision) error {
	h.mu.Lock()
	h.handler = handler
	h.mu.Unlock()

	callback := windows.NewCallback(h.lowLevelKeyboardProc)
	mod, err := windows.GetModuleHandle("")
	if err != nil {
		return &platform.HookInstallError{Err: err}
	}

	handle, _, callErr := procSetHook.Call(
		uintptr(whKeyboardLL),
		callback,
		uintptr(mod),
		0,
	)
	if handle == 0 {
		return &platform.HookInstallError{Err: fmt.Errorf("SetWindowsHookExW failed: %v", callErr)}
	}
	h.handle = handle
	h.done = make(chan struct{})

	go h.messageLoop()
	return nil
}

func (h *Hook) messageLoop() {
	var msg struct {
		hwnd    uintptr
		message uint32
		wParam  uintptr
		lParam  uintptr
		time    uint32
		pt      struct{ x, y int32 }
	}
	for {
		select {
		case <-h.done:
			return
		default:
		}
		procGetMessage.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0)
	}
}

func (h *Hook) Uninstall() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.handle == 0 {
		return nil
	}
	procUnhook.Call(h.handle)
	h.handle = 0
	if h.done != nil {
		close(h.done)
	}
	return nil
}

// lowLevelKeyboardProc is the HOOKPROC callback. It must return quickly:
// per spec §5 the OS drops a hook that blocks for too long.
func (h *Hook) lowLevelKeyboardProc(nCode int, wParam, lParam uintptr) uintptr {
	if nCode == hcAction {
		kb := (*kbdllhookstruct)(unsafe.Pointer(lParam))
		event := platform.KeyEvent{
			VirtualKey: kb.VkCode,
			Scancode:   kb.ScanCode,
			IsKeyDown:  wParam == wmKeyDown || wParam == wmSysKeyDown,
			IsInjected: kb.Flags&llkhfInjected != 0,
		}
		if r, ok := vkToChar(kb.VkCode); ok {
			event.Char = r
			event.HasChar = true
		}

		h.mu.Lock()
		handler := h.handler
		h.mu.Unlock()

		if handler != nil {
			if decision := handler(event); decision == platform.Suppress {
				return 1
			}
		}
	}
	ret, _, _ := procCallNextHook.Call(0, uintptr(nCode), wParam, lParam)
	return ret
}

// vkToChar resolves the ASCII letters and a handful of terminator keys the
// word tracker needs a produced character for. Like the original's
// vk_to_char, this only resolves the keys the tracking path cares about;
// the replay path below is Unicode-clean independent of this table.
func vkToChar(vk uint32) (rune, bool) {
	switch {
	case vk >= 'A' && vk <= 'Z':
		return rune(vk + ('a' - 'A')), true
	case vk == 0x20: // VK_SPACE
		return ' ', true
	case vk == 0x0D: // VK_RETURN
		return '\n', true
	case vk == 0x09: // VK_TAB
		return '\t', true
	}
	return 0, false
}

// Sink is a SyntheticInputSink backed by SendInput, attaching to the
// foreground thread's input queue first so the synthesized keystrokes are
// correctly attributed to the focused control (spec §4.E's "Standard
// targets use the OS's synthesised-input primitive after attaching to the
// foreign input queue").
type Sink struct{}

func NewSink() *Sink { return &Sink{} }

func (s *Sink) Send(ctx context.Context, plan platform.ReplayPlan) error {
	unattach := attachToForeground()
	defer unattach()

	for _, op := range plan.Ops {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		switch op.Kind {
		case platform.OpBackspace:
			if err := sendVirtualKey(0x08); err != nil { // VK_BACK
				return err
			}
		case platform.OpType:
			if err := sendUnicodeChar(op.Char); err != nil {
				return err
			}
		case platform.OpSleep:
			sleep(op.Delay)
		}
	}
	return nil
}

type keybdInput struct {
	Vk        uint16
	Scan      uint16
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

type input struct {
	Type uint32
	Ki   keybdInput
	_    [8]byte // padding to match the union's size on 64-bit
}

func sendVirtualKey(vk uint16) error {
	down := input{Type: inputKeyboard, Ki: keybdInput{Vk: vk}}
	up := input{Type: inputKeyboard, Ki: keybdInput{Vk: vk, Flags: keyeventfKeyUp}}
	if err := sendOne(&down); err != nil {
		return err
	}
	return sendOne(&up)
}

func sendUnicodeChar(r rune) error {
	down := input{Type: inputKeyboard, Ki: keybdInput{Scan: uint16(r), Flags: keyeventfUniCd}}
	up := input{Type: inputKeyboard, Ki: keybdInput{Scan: uint16(r), Flags: keyeventfUniCd | keyeventfKeyUp}}
	if err := sendOne(&down); err != nil {
		return err
	}
	return sendOne(&up)
}

func sendOne(i *input) error {
	ret, _, callErr := procSendInput.Call(1, uintptr(unsafe.Pointer(i)), unsafe.Sizeof(*i))
	if ret == 0 {
		return fmt.Errorf("windows: SendInput failed: %v", callErr)
	}
	return nil
}

func attachToForeground() (detach func()) {
	fg, _, _ := procGetForeground.Call()
	if fg == 0 {
		return func() {}
	}
	var pid uint32
	tid, _, _ := procGetWindowThrd.Call(fg, uintptr(unsafe.Pointer(&pid)))
	self, _, _ := procGetCurrentThrd.Call()
	if tid == 0 || tid == self {
		return func() {}
	}
	procAttachThread.Call(self, tid, 1)
	return func() { procAttachThread.Call(self, tid, 0) }
}

// FocusObserver polls GetForegroundWindow for focus-change notifications.
// Windows has no lightweight push notification for "focus changed to a
// different control" across arbitrary foreign applications without a
// global WinEvent hook, which is a larger surface than this polling
// approach for the same outcome the engine needs: a target id it can
// compare at commit/undo time.
type FocusObserver struct {
	mu        sync.Mutex
	current   platform.FocusSnapshot
	listeners []func(platform.FocusSnapshot)
}

func NewFocusObserver() *FocusObserver { return &FocusObserver{} }

func (f *FocusObserver) Snapshot() platform.FocusSnapshot {
	hwnd, _, _ := procGetForeground.Call()
	class := getClassName(hwnd)

	f.mu.Lock()
	defer f.mu.Unlock()
	if class != f.current.WindowClass || fmt.Sprintf("%x", hwnd) != f.current.TargetID {
		f.current = platform.FocusSnapshot{
			WindowClass: class,
			TargetID:    fmt.Sprintf("%x", hwnd),
			Tag:         platform.TargetUnknown,
		}
		for _, l := range f.listeners {
			if l != nil {
				l(f.current)
			}
		}
	}
	return f.current
}

func (f *FocusObserver) Subscribe(onChange func(platform.FocusSnapshot)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, onChange)
	idx := len(f.listeners) - 1
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.listeners[idx] = nil
	}
}

func sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

func getClassName(hwnd uintptr) string {
	buf := make([]uint16, 256)
	n, _, _ := procGetClassName.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf[:n])
}
