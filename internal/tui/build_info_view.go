// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/summarium/models"
)

const notAvailable = "N/A"

// renderBuildInfoWindow shows the client build next to the server version.
// The server line says "checking..." until the version request returns.
func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string) string {
	if serverVersion == "" {
		serverVersion = "checking..."
	}
	rows := [][2]string{
		{"Client", orNotAvailable(info.BuildVersion())},
		{"Built", orNotAvailable(info.BuildDate())},
		{"Commit", orNotAvailable(info.BuildCommit())},
		{"Server", serverVersion},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%-8s %s", row[0]+":", row[1]))
	}
	return renderPage("ABOUT SUMMARIUM", overlayBoxStyle.Render(strings.Join(lines, "\n")), "esc: back")
}

func orNotAvailable(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return notAvailable
	}
	return v
}
