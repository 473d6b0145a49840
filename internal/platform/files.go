package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// SaveDeliveryPDF writes a generated document into dir under the given
// filename and returns the full path. An existing file with the same name
// is not overwritten; a numbered variant is chosen instead.
func SaveDeliveryPDF(dir, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("document is empty")
	}
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	path := UniquePath(filepath.Join(dir, filename))
	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// UniquePath returns path unchanged when nothing exists there, otherwise
// the first "name (n).ext" variant that is free
func UniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Downloads"), nil
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %v", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return openFileInFinderMacOS(absPath)
	case OSWindows:
		return openFileInExplorerWindows(absPath)
	case OSLinux:
		return openFileInManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInFinderMacOS opens file in Finder on macOS with selection
func openFileInFinderMacOS(filePath string) error {
	cmd := exec.Command(OpenCommand, MacOSSelectFlag, filePath)
	return cmd.Run()
}

// openFileInExplorerWindows opens file in Explorer on Windows with selection
func openFileInExplorerWindows(filePath string) error {
	cmd := exec.Command(ExplorerCommand, WindowsSelectParam, filePath)
	return cmd.Run()
}

// openFileInManagerLinux opens directory containing file on Linux
// Note: File selection is not standardized on Linux, so we open the parent directory
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	// Try xdg-open first (most common)
	cmd := exec.Command(XDGOpenCommand, dir)
	if err := cmd.Run(); err == nil {
		return nil
	}

	// Fallback to common file managers
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			cmd := exec.Command(fm, dir)
			return cmd.Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %v", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Run()
	case OSLinux:
		return exec.Command(XDGOpenCommand, absPath).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
