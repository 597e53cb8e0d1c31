package run

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"stratum/internal/appframe"
	"stratum/internal/link"
	"stratum/internal/netw"
	"stratum/internal/obfs"
	"stratum/internal/phys"
	"stratum/internal/pipeline"
	"stratum/internal/segment"
	"stratum/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	layerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	badStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

func renderTrace(steps []pipeline.Step) {
	if len(steps) == 0 {
		return
	}
	fmt.Println(titleStyle.Render(fmt.Sprintf("%s (%d layers)", steps[0].Direction, len(steps))))
	for _, step := range steps {
		fmt.Printf("%s %s\n", layerStyle.Render(step.Layer+":"), summarize(step.Envelope))
	}
	fmt.Println()
}

// summarize prints the fields worth seeing per envelope type, roughly
// one line per layer.
func summarize(env any) string {
	switch e := env.(type) {
	case appframe.Envelope:
		return fmt.Sprintf("header %s payload %q", dimStyle.Render(firstLine(e.Header)), clip(e.Payload, 40))
	case obfs.Envelope:
		preview := e.Cipher
		if len(preview) > 20 {
			preview = preview[:20]
		}
		return fmt.Sprintf("cipher=%s codec=%s %d bytes, first bytes % x", e.Mode, e.Codec, e.PlainLen, preview)
	case session.Envelope:
		return fmt.Sprintf("session %s over %d cipher bytes", e.ID, len(e.Inner.Cipher))
	case segment.Set:
		if e.Total() == 0 {
			return "0 segments"
		}
		first := e.Segments[0]
		return fmt.Sprintf("%d segments, ports %d→%d, first checksum %s", e.Total(), first.SrcPort, first.DstPort, first.Checksum)
	case netw.PacketSet:
		if e.Total() == 0 {
			return "0 packets"
		}
		first := e.Packets[0]
		return fmt.Sprintf("%d packets, %s→%s, ttl %d, proto %s", e.Total(), first.SrcIP, first.DstIP, first.TTL, first.Protocol)
	case link.FrameSet:
		if e.Total() == 0 {
			return "0 frames"
		}
		first := e.Frames[0]
		return fmt.Sprintf("%d frames, %s→%s, ethertype 0x%04x", e.Total(), first.SrcMAC, first.DstMAC, uint16(first.EtherType))
	case phys.BinarySet:
		if len(e.Frames) == 0 {
			return "0 bits"
		}
		return fmt.Sprintf("%d bits over %d frames, first bits %s…", e.TotalBits(), len(e.Frames), clip(e.Frames[0].Bits, 32))
	case string:
		return fmt.Sprintf("message %q", e)
	}
	return fmt.Sprintf("%v", env)
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\r' || s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
