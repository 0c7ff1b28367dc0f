package registry

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Info holds the fields decoded from an identifier this tool produced.
type Info struct {
	Version   int
	Layout    string    // RFC4122, Reserved, Microsoft or Future
	Time      time.Time // zero unless the version embeds a timestamp
	ClockSeq  int       // v1 only
	Node      string    // v1 only, colon separated
	HasTime   bool
	HasNodeID bool
}

// Inspect decodes version, layout and embedded timestamp of id.
func Inspect(id string) (Info, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return Info{}, fmt.Errorf("failed to parse identifier: %w", err)
	}

	info := Info{
		Version: int(u.Version()),
		Layout:  u.Variant().String(),
	}

	switch info.Version {
	case 1:
		sec, nsec := u.Time().UnixTime()
		info.Time = time.Unix(sec, nsec).UTC()
		info.HasTime = true
		info.ClockSeq = u.ClockSequence()
		info.Node = formatNode(u.NodeID())
		info.HasNodeID = true
	case 7:
		info.Time = time.UnixMilli(unixMillis(u)).UTC()
		info.HasTime = true
	}

	return info, nil
}

// Timestamp returns the embedded time of a v1 or v7 identifier.
func Timestamp(id string) (time.Time, bool) {
	info, err := Inspect(id)
	if err != nil || !info.HasTime {
		return time.Time{}, false
	}
	return info.Time, true
}

// unixMillis reads the 48-bit big-endian millisecond prefix of a v7 UUID.
func unixMillis(u uuid.UUID) int64 {
	var ms int64
	for _, b := range u[:6] {
		ms = ms<<8 | int64(b)
	}
	return ms
}

func formatNode(node []byte) string {
	if len(node) != 6 {
		return ""
	}
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		node[0], node[1], node[2], node[3], node[4], node[5])
}
