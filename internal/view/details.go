package view

import (
	"strings"

	"github.com/five82/signet-rx/internal/receiver"
)

// Detail is the read-only inspection text for one block.
type Detail struct {
	Block Block
	Title string
	Lines []string
}

// Body joins the lines for plain-text display.
func (d Detail) Body() string {
	return strings.Join(d.Lines, "\n")
}

// Details assembles the detail panel for block from the latest state.
// extended adds the tuning fields shown by the beta layout.
func Details(block Block, st *receiver.State, extended bool) Detail {
	d := Sync(st)
	if block == BlockWX {
		lines := []string{
			"NOAA: " + d.WxFreq,
			"Status: " + orText(d.WxStatus, "(none)"),
		}
		if extended {
			lines = append(lines,
				"Modulation: "+d.WxMod,
				"Bandwidth: "+d.WxBw,
				"Signal: "+d.WxSignal,
			)
		}
		lines = append(lines,
			"",
			"Last Alert: "+d.LastAlert,
			"Time: "+orText(d.LastAlertTime, "(unknown)"),
		)
		return Detail{Block: block, Title: "Weather Alert Details", Lines: lines}
	}

	title := "FM Station Details"
	if extended {
		title = "Receiver Details"
	}
	lines := []string{
		"Frequency: " + d.RxFreq,
		"Station: " + orText(d.Station, "(none)"),
	}
	if extended {
		lines = append(lines,
			"Modulation: "+d.RxMod,
			"Bandwidth: "+d.RxBw,
			"Step: "+d.RxStep,
			"Squelch: "+d.RxSql,
			"Profile: "+d.RxProfile,
			"Signal: "+d.RxSignal,
		)
	}
	lines = append(lines,
		"",
		"Radio Text:",
		orText(d.RadioText, "(none)"),
	)
	return Detail{Block: block, Title: title, Lines: lines}
}

func orText(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
