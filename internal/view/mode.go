package view

import (
	"strings"

	"github.com/five82/signet-rx/internal/receiver"
)

// Mode selects what occupies the shared visualization area.
type Mode int

const (
	// Manual shows the manual-control surface and hides the spectrum.
	Manual Mode = iota
	// Broadcast shows the spectrum and hides the manual controls.
	Broadcast
)

const (
	manualProfile  = "MANUAL_RX"
	broadcastDemod = "WFM"
)

func (m Mode) String() string {
	if m == Broadcast {
		return "broadcast"
	}
	return "manual"
}

// ShowsSpectrum reports whether the spectrum surface is visible.
func (m Mode) ShowsSpectrum() bool { return m == Broadcast }

// ShowsManual reports whether the manual-control surface is visible.
func (m Mode) ShowsManual() bool { return m == Manual }

// ResolveMode derives the view mode from the latest state. It is evaluated
// every frame; there is no hysteresis.
func ResolveMode(st *receiver.State) Mode {
	if st.Profile() != manualProfile && strings.ToUpper(st.RxModulation()) == broadcastDemod {
		return Broadcast
	}
	return Manual
}

// Block identifies one of the clickable receiver blocks.
type Block int

const (
	BlockRX Block = iota
	BlockWX
)

func (b Block) String() string {
	if b == BlockWX {
		return "wx"
	}
	return "rx"
}

// BlockOrder is the RX/WX block arrangement for one frame.
type BlockOrder struct {
	Primary   Block
	Secondary Block
}

var weatherModes = map[string]struct{}{
	"WX_LIVE":  {},
	"WX_ALERT": {},
}

// ResolveBlocks puts the weather block first while the receiver runs in a
// weather mode, and the RX block first otherwise.
func ResolveBlocks(st *receiver.State) BlockOrder {
	if _, ok := weatherModes[strings.ToUpper(strings.TrimSpace(st.ModeName()))]; ok {
		return BlockOrder{Primary: BlockWX, Secondary: BlockRX}
	}
	return BlockOrder{Primary: BlockRX, Secondary: BlockWX}
}
