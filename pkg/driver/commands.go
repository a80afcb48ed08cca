package driver

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/friedelschoen/wiimouse/pkg/irpointer"
	"github.com/friedelschoen/wiimouse/pkg/project"
	"github.com/friedelschoen/wiimouse/pkg/virtdev"
	"github.com/friedelschoen/wiimouse/pkg/wmconfig"
)

// dispatch runs one control-socket command and returns the line to write
// back to its connection. Mutations here are applied to the in-memory
// pipeline state immediately; they take effect at the next tick boundary
// since the socket is drained once per tick, before runningTick runs.
func (d *Driver) dispatch(name string, args []string) string {
	switch name {
	case "mouse":
		return d.cmdMouse(args)
	case "cal100":
		return d.cmdCal100(args)
	case "getscreenarea100":
		return d.cmdGetScreenArea100(args)
	case "screenarea100":
		return d.cmdScreenArea100(args)
	case "keycount":
		return d.cmdKeyCount(args)
	case "keyget":
		return d.cmdKeyGet(args)
	case "keymapget":
		return d.cmdKeyMapGet(args)
	case "bindkey":
		return d.cmdBindKey(args)
	case "irdist100":
		return d.cmdIrDist100(args)
	case "calibration":
		return d.cmdCalibration(args)
	case "getsmoothing100":
		return d.cmdGetSmoothing100(args)
	case "setsmoothing100":
		return d.cmdSetSmoothing100(args)
	default:
		return "ERROR:Unknown command"
	}
}

func parseInts(args []string, n int) ([]int64, error) {
	if len(args) != n {
		return nil, &CommandArgError{Reason: fmt.Sprintf("expected %d parameters, got %d", n, len(args))}
	}
	out := make([]int64, n)
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, &CommandArgError{Reason: fmt.Sprintf("parameter %d: %v", i, err)}
		}
		out[i] = v
	}
	return out, nil
}

func (d *Driver) cmdMouse(args []string) string {
	if len(args) != 1 {
		return "ERROR:Invalid parameter count"
	}
	switch args[0] {
	case "on":
		d.mouseEnabled = true
	case "off":
		d.mouseEnabled = false
	default:
		return "ERROR:Invalid parameter"
	}
	if d.sink != nil {
		d.sink.MouseEnabled = d.mouseEnabled
	}
	return "OK"
}

func (d *Driver) cmdCal100(args []string) string {
	vals, err := parseInts(args, 6)
	if err != nil {
		return "ERROR:" + err.Error()
	}
	x := project.Vec3{X: float64(vals[0]) / 100, Y: float64(vals[1]) / 100, Z: float64(vals[2]) / 100}
	y := project.Vec3{X: float64(vals[3]) / 100, Y: float64(vals[4]) / 100, Z: float64(vals[5]) / 100}
	d.calibration.SetCalibration(x, y)

	d.cfg.SetVector("calmatx", wmconfig.Vector3{x.X, x.Y, x.Z})
	d.cfg.SetVector("calmaty", wmconfig.Vector3{y.X, y.Y, y.Z})
	d.persistConfig()
	return "OK"
}

func (d *Driver) cmdGetScreenArea100(args []string) string {
	if len(args) != 0 {
		return "ERROR:Invalid parameter count"
	}
	tl, br := d.calibration.ScreenTL, d.calibration.ScreenBR
	return fmt.Sprintf("OK:%d:%d:%d:%d", int64(tl.X*100), int64(tl.Y*100), int64(br.X*100), int64(br.Y*100))
}

func (d *Driver) cmdScreenArea100(args []string) string {
	vals, err := parseInts(args, 4)
	if err != nil {
		return "ERROR:" + err.Error()
	}
	tl := project.Vec2{X: float64(vals[0]) / 100, Y: float64(vals[1]) / 100}
	br := project.Vec2{X: float64(vals[2]) / 100, Y: float64(vals[3]) / 100}
	d.calibration.SetScreenArea(tl, br)

	d.cfg.SetVector("screen_top_left", wmconfig.Vector3{d.calibration.ScreenTL.X, d.calibration.ScreenTL.Y, 0})
	d.cfg.SetVector("screen_bottom_right", wmconfig.Vector3{d.calibration.ScreenBR.X, d.calibration.ScreenBR.Y, 0})
	d.persistConfig()
	return "OK"
}

func (d *Driver) cmdKeyCount(args []string) string {
	if len(args) != 0 {
		return "ERROR:Invalid parameter count"
	}
	return fmt.Sprintf("OK:%d", len(virtdev.Catalog))
}

func (d *Driver) cmdKeyGet(args []string) string {
	vals, err := parseInts(args, 1)
	if err != nil {
		return "ERROR:" + err.Error()
	}
	idx := int(vals[0])
	if idx < 0 || idx >= len(virtdev.Catalog) {
		return "ERROR:Index out of range"
	}
	e := virtdev.Catalog[idx]
	return fmt.Sprintf("OK:%s:%s:%s", e.RawName, e.Human, e.Category)
}

func (d *Driver) cmdKeyMapGet(args []string) string {
	if len(args) != 0 {
		return "ERROR:Invalid parameter count"
	}
	var b strings.Builder
	b.WriteString("OK:")
	mappings := d.buttons.Mappings()
	for _, info := range buttonTable {
		for _, irVisible := range [2]bool{true, false} {
			keys := mappings[irpointer.MapKey{Button: int(info.key), IRVisible: irVisible}]
			irBit := "0"
			if irVisible {
				irBit = "1"
			}
			for _, k := range keys {
				name := "?"
				if e, ok := virtdev.FindByKey(virtdev.Key(k)); ok {
					name = e.RawName
				}
				fmt.Fprintf(&b, "%s:%s:%s:", info.protocol, irBit, name)
			}
		}
	}
	return strings.TrimSuffix(b.String(), ":")
}

func (d *Driver) cmdBindKey(args []string) string {
	if len(args) != 3 {
		return "ERROR:Invalid parameter count"
	}
	info, ok := buttonByName(args[0])
	if !ok {
		return "ERROR:Unknown button"
	}
	if args[1] != "0" && args[1] != "1" {
		return "ERROR:Invalid parameter"
	}
	irVisible := args[1] == "1"
	entry, ok := virtdev.FindByName(args[2])
	if !ok {
		return "ERROR:Unknown key"
	}

	d.buttons.Bind(int(info.key), irVisible, int(entry.Key))
	if err := d.cfg.SetString(d.buttonConfigKey(info, irVisible), formatKeyList([]int{int(entry.Key)})); err != nil {
		d.log.Warn().Err(err).Msg("driver: failed to persist button binding")
	}
	d.persistConfig()
	return "OK"
}

func (d *Driver) cmdIrDist100(args []string) string {
	vals, err := parseInts(args, 1)
	if err != nil {
		return "ERROR:" + err.Error()
	}
	d.cluster.DefaultDistance = float64(vals[0]) / 100
	if err := d.cfg.SetString("default_ir_distance", strconv.FormatFloat(d.cluster.DefaultDistance, 'f', -1, 64)); err != nil {
		d.log.Warn().Err(err).Msg("driver: failed to persist ir distance")
	}
	d.persistConfig()
	return "OK"
}

// cmdCalibration toggles calibration mode: point collapse and smoothing
// are both disabled while "on" so both sensor-bar spots stay independently
// visible and unfiltered, and both are restored on "off".
func (d *Driver) cmdCalibration(args []string) string {
	if len(args) != 1 {
		return "ERROR:Invalid parameter count"
	}
	switch args[0] {
	case "on":
		d.cluster.EnablePointCollapse = false
		d.smoother.Enabled = false
	case "off":
		d.cluster.EnablePointCollapse = true
		d.smoother.Enabled = true
	default:
		return "ERROR:Invalid parameter"
	}
	return "OK"
}

func (d *Driver) cmdGetSmoothing100(args []string) string {
	if len(args) != 0 {
		return "ERROR:Invalid parameter count"
	}
	clicked := math.Log10(d.smoother.PosMixClicked)
	released := math.Log10(d.smoother.PosMix)
	return fmt.Sprintf("OK:%d:%d:%d",
		int64(math.Round(clicked*100)),
		int64(math.Round(released*100)),
		int64(math.Round(d.smoother.FreezeDelay*100000)))
}

func (d *Driver) cmdSetSmoothing100(args []string) string {
	vals, err := parseInts(args, 3)
	if err != nil {
		return "ERROR:" + err.Error()
	}
	if vals[0] > 0 || vals[1] > 0 {
		return "ERROR:clicked and released factors must be <= 0"
	}
	if vals[2] < 0 {
		return "ERROR:freeze delay must be >= 0"
	}

	d.smoother.PosMixClicked = math.Pow(10, float64(vals[0])/100)
	d.smoother.PosMix = math.Pow(10, float64(vals[1])/100)
	d.smoother.FreezeDelay = float64(vals[2]) / 100000

	d.cfg.SetVector("smoothing_clicked_released_delay", wmconfig.Vector3{d.smoother.PosMixClicked, d.smoother.PosMix, d.smoother.FreezeDelay})
	d.persistConfig()
	return "OK"
}
