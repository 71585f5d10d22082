package main

import (
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/editline/internal/config"
	"github.com/unkn0wn-root/editline/internal/editcore"
	"github.com/unkn0wn-root/editline/internal/theme"
	"github.com/unkn0wn-root/editline/internal/ui/editbox"
	"github.com/unkn0wn-root/editline/internal/ui/form"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	var (
		showVersion  bool
		showConfig   bool
		themeName    string
		saveSettings bool
	)

	flag.BoolVar(&showVersion, "version", false, "Show editline version")
	flag.BoolVar(&showConfig, "config-dir", false, "Print the settings directory and exit")
	flag.StringVar(&themeName, "theme", "", "Theme name, overrides the settings file")
	flag.BoolVar(
		&saveSettings,
		"write-settings",
		false,
		"Write the effective settings back to the settings file and exit",
	)
	flag.Parse()

	if showVersion {
		fmt.Printf("editline %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		if sum, err := executableChecksum(); err == nil {
			fmt.Printf("  sha256: %s\n", sum)
		} else {
			fmt.Printf("  sha256: unavailable (%v)\n", err)
		}
		os.Exit(0)
	}

	if showConfig {
		fmt.Println(config.Dir())
		os.Exit(0)
	}

	settings, settingsHandle, err := config.LoadSettings()
	if err != nil {
		log.Printf("settings load error: %v", err)
		settings = config.Settings{Input: config.DefaultInputSettings()}
		settingsHandle = config.SettingsHandle{
			Path:   filepath.Join(config.Dir(), "settings.toml"),
			Format: config.SettingsFormatTOML,
		}
	}

	if themeName != "" {
		settings.DefaultTheme = themeName
	}

	if saveSettings {
		if err := config.SaveSettings(settings, settingsHandle); err != nil {
			log.Fatalf("write settings: %v", err)
		}
		fmt.Printf("Wrote %s\n", settingsHandle.Path)
		os.Exit(0)
	}

	th := theme.Load(strings.TrimSpace(strings.ToLower(settings.DefaultTheme)))

	fields, err := buildFields(settings)
	if err != nil {
		log.Fatalf("build form: %v", err)
	}

	model := form.New(th, "editline demo", fields)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func buildFields(settings config.Settings) ([]form.Field, error) {
	username := editbox.New()
	username.Placeholder = "user name"
	if err := username.SetPattern("[a-zA-Z][a-zA-Z0-9]*"); err != nil {
		return nil, err
	}
	username.SetCharLimit(32)

	password := editbox.New()
	password.Placeholder = "password"
	password.SetPasswordChar('•')

	age := editbox.New()
	age.Placeholder = "age"
	if err := age.SetPattern(editcore.PatternUInt); err != nil {
		return nil, err
	}
	age.SetCharLimit(3)

	discount := editbox.New()
	if err := discount.SetPattern(editcore.PatternUInt); err != nil {
		return nil, err
	}
	discount.SetCharLimit(3)
	discount.SetSuffix("%")
	discount.SetAlignment(editcore.AlignRight)

	amount := editbox.New()
	amount.Placeholder = "0.00"
	if err := amount.SetPattern(editcore.PatternFloat); err != nil {
		return nil, err
	}

	note := editbox.New()
	note.Placeholder = "fits the box, no scrolling"
	note.SetLimitWidth(true)

	free := editbox.New()
	free.Placeholder = "configured via settings file"
	if err := applyInputSettings(&free, settings.Input); err != nil {
		return nil, err
	}

	fields := []form.Field{
		{Label: "Username", Input: username},
		{Label: "Password", Input: password},
		{Label: "Age", Input: age},
		{Label: "Discount", Input: discount},
		{Label: "Amount", Input: amount},
		{Label: "Note", Input: note},
		{Label: "Custom", Input: free},
	}

	for i := range fields {
		if err := fields[i].Input.KeyMap.ApplyOverrides(settings.Keys); err != nil {
			return nil, err
		}
	}
	return fields, nil
}

func applyInputSettings(m *editbox.Model, in config.InputSettings) error {
	if err := m.SetPattern(in.Pattern); err != nil {
		return err
	}
	m.SetCharLimit(in.CharLimit)
	if runes := []rune(in.PasswordRune); len(runes) > 0 {
		m.SetPasswordChar(runes[0])
	}
	switch in.Alignment {
	case config.InputAlignmentCenter:
		m.SetAlignment(editcore.AlignCenter)
	case config.InputAlignmentRight:
		m.SetAlignment(editcore.AlignRight)
	default:
		m.SetAlignment(editcore.AlignLeft)
	}
	m.SetLimitWidth(in.LimitWidth)
	return nil
}

func executableChecksum() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	f, err := os.Open(exe)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
