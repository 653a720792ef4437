package commands

import (
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/mobile-next/wingest/webdriver"
	"github.com/mobile-next/wingest/winapi"
)

type DoctorInfo struct {
	WingestVersion    string      `json:"wingest_version"`
	OS                string      `json:"os"`
	OSVersion         string      `json:"os_version"`
	NativeInput       bool        `json:"native_input"`
	NativeInputError  string      `json:"native_input_error,omitempty"`
	Screen            *ScreenInfo `json:"screen,omitempty"`
	ScreenError       string      `json:"screen_error,omitempty"`
	DriverURL         string      `json:"driver_url,omitempty"`
	DriverReachable   *bool       `json:"driver_reachable,omitempty"`
	DriverError       string      `json:"driver_error,omitempty"`
	DriverSessionID   string      `json:"driver_session_id,omitempty"`
	ElementSizeCached bool        `json:"element_size_cached"`
}

func getOSVersion() string {
	switch runtime.GOOS {
	case "windows":
		cmd := exec.Command("cmd", "/c", "ver")
		output, err := cmd.CombinedOutput()
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(output))
	case "darwin":
		cmd := exec.Command("sw_vers", "-productVersion")
		output, err := cmd.CombinedOutput()
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(output))
	case "linux":
		data, err := os.ReadFile("/etc/os-release")
		if err != nil {
			return ""
		}
		lines := strings.Split(string(data), "\n")
		for _, line := range lines {
			if strings.HasPrefix(line, "PRETTY_NAME=") {
				return strings.Trim(strings.TrimPrefix(line, "PRETTY_NAME="), "\"")
			}
		}
		return ""
	default:
		return ""
	}
}

func checkNativeInput(info *DoctorInfo) {
	runnerMu.Lock()
	port := runnerConfig.Port
	runnerMu.Unlock()

	if port != nil {
		info.NativeInput = true
		return
	}

	if _, err := winapi.NewUser32Port(); err != nil {
		info.NativeInputError = err.Error()
		return
	}
	info.NativeInput = true
}

func checkDriver(info *DoctorInfo) {
	runnerMu.Lock()
	cfg := runnerConfig
	runnerMu.Unlock()

	if cfg.DriverURL == "" {
		return
	}

	client := webdriver.NewClient(cfg.DriverURL, cfg.SessionID)
	info.DriverURL = client.BaseURL()
	info.DriverSessionID = cfg.SessionID
	info.ElementSizeCached = cfg.SizeCache > 0

	reachable := true
	if _, err := client.Status(); err != nil {
		reachable = false
		info.DriverError = err.Error()
	}
	info.DriverReachable = &reachable
}

// DoctorCommand performs system diagnostics and returns information about the environment
func DoctorCommand(version string) *CommandResponse {
	info := DoctorInfo{
		WingestVersion: version,
		OS:             runtime.GOOS,
		OSVersion:      getOSVersion(),
	}

	checkNativeInput(&info)

	if info.NativeInput {
		screen, err := getScreenInfo()
		if err != nil {
			info.ScreenError = err.Error()
		} else {
			info.Screen = screen
		}
	}

	checkDriver(&info)

	return NewSuccessResponse(info)
}
