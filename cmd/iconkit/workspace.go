package main

import (
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/Aeastr/iconkit/internal/assets"
	"github.com/Aeastr/iconkit/internal/config"
	"github.com/Aeastr/iconkit/internal/logger"
)

// loadWorkspace loads the bundle at path plus the settings that govern it.
// Settings come from --config when given, otherwise from an iconkit.yaml next
// to the bundle, otherwise defaults. Extra assets from the settings are merged
// into the bundle's catalog.
func loadWorkspace(flags *rootFlags, path string) (*assets.Bundle, *config.Settings, error) {
	bundle, err := assets.LoadBundle(path)
	if err != nil {
		return nil, nil, err
	}

	settingsPath := flags.configPath
	if settingsPath == "" {
		settingsPath = filepath.Join(filepath.Dir(bundle.Path), config.DefaultFileName)
	}

	settings, err := config.Load(settingsPath)
	if err != nil {
		return nil, nil, err
	}

	bundle.Catalog.Add(settings.ExtraAssets...)
	return bundle, settings, nil
}

func newLogger(flags *rootFlags) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: true})
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func severityMark(severity string, useUnicode bool) string {
	if useUnicode {
		if severity == "error" {
			return "✗"
		}
		return "⚠"
	}
	if severity == "error" {
		return "[x]"
	}
	return "[!]"
}
