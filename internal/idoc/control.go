package idoc

import (
	"strings"
	"time"
)

// Control header constants.
const (
	controlRelease = "740"
	controlDocType = " 3012  Z1BTDOC"
	controlMessage = "ZSC_BTEND"
	controlSender  = "SAPMEP    LS  MEPCLNT500"
	controlReceive = "I041      US  BARTENDER"
	controlSuffix  = "Material_EN"
	timestampFmt   = "20060102150405"
)

// ControlHeader formats the EDI_DC40 control record that opens a document.
// It carries no sequence number.
func ControlHeader(control string, created time.Time) string {
	var b strings.Builder
	b.WriteString(fit(TagControl, 10))
	b.WriteString(Client)
	b.WriteString(fit(control, controlNumWidth))
	b.WriteString(controlRelease)
	b.WriteString(controlDocType)
	b.WriteString(spaces(53))
	b.WriteString(controlMessage)
	b.WriteString(spaces(40))
	b.WriteString(controlSender)
	b.WriteString(spaces(91))
	b.WriteString(controlReceive)
	b.WriteString(spaces(92))
	b.WriteString(created.Format(timestampFmt))
	b.WriteString(spaces(112))
	b.WriteString(controlSuffix)
	b.WriteString(spaces(9))
	return b.String()
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}
