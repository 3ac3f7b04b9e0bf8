package harness

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

var speedUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "YB", "BB"}

const speedBase = 1024.0

// Stat is the measurement of one executed case.
type Stat struct {
	Name     string
	Size     int
	Seed     uint32
	Duration time.Duration
	Result   string
}

// BytesPerSecond is Size over Duration. A duration too short for the clock
// to register reports +Inf, except for an empty size which reports 0.
func (s Stat) BytesPerSecond() float64 {
	if s.Size == 0 {
		return 0
	}
	if s.Duration <= 0 {
		return math.Inf(1)
	}
	return float64(s.Size) / s.Duration.Seconds()
}

// Speed scales BytesPerSecond by powers of 1024, e.g. "12.50MB/s".
func (s Stat) Speed() string {
	speed := s.BytesPerSecond()
	if math.IsInf(speed, 1) {
		return "inf/s"
	}
	unit := 0
	for unit+1 < len(speedUnits) && speed > speedBase {
		unit++
		speed /= speedBase
	}
	return fmt.Sprintf("%.2f%s/s", speed, speedUnits[unit])
}

// String is the fixed-width report line.
func (s Stat) String() string {
	return fmt.Sprintf("%-34s size: %-8d duration: %-14s speed: %-12s seed: %-8d res:%s",
		s.Name, s.Size, s.Duration.String(), s.Speed(), s.Seed, s.Result)
}

// RecordHeader names the columns of Record.
var RecordHeader = []string{"name", "size", "duration", "duration(s)", "speed", "size_per_sec"}

// Record is the table row for s, in RecordHeader order.
func (s Stat) Record() []string {
	return []string{
		s.Name,
		strconv.Itoa(s.Size),
		s.Duration.String(),
		strconv.FormatFloat(s.Duration.Seconds(), 'g', -1, 64),
		s.Speed(),
		strconv.FormatFloat(s.BytesPerSecond(), 'g', -1, 64),
	}
}
