// Package driver ties the signal-processing pipeline, the calibration
// projection, the virtual pointer and the on-disk configuration store
// into the NoRemote/Running state machine described by the driver
// component design: discover a Remote, run its tick loop at roughly
// 100Hz, and serve a control socket for live reconfiguration.
package driver

import (
	"strconv"
	"time"

	"github.com/friedelschoen/wiimouse"
	"github.com/friedelschoen/wiimouse/pkg/irpointer"
	"github.com/friedelschoen/wiimouse/pkg/project"
	"github.com/friedelschoen/wiimouse/pkg/virtdev"
	"github.com/friedelschoen/wiimouse/pkg/wmconfig"
	"github.com/rs/zerolog"
)

// DefaultSocketAddress is the control socket path used when neither the
// config file nor the CLI names one.
const DefaultSocketAddress = "./wiimote-mouse.sock"

type state int

const (
	stateNoRemote state = iota
	stateRunning
)

// Driver owns one Remote's full processing stack: the pipeline stages
// (held individually so control-socket commands can reach into their
// runtime-configurable fields), the calibration/sink pair, the backing
// config store and the control socket.
type Driver struct {
	log zerolog.Logger
	cfg *wmconfig.Store

	control *controlSocket

	state  state
	device *wiimouse.Remote

	pointerDev *virtdev.Pointer

	cluster    *irpointer.ClusterStage
	buttons    *irpointer.ButtonMapStage
	unrotate   *irpointer.UnrotateStage
	predictive *irpointer.PredictiveStage
	smoother   *irpointer.SmootherStage
	pipeline   *irpointer.Pipeline

	calibration *project.Calibration
	sink        *project.Sink

	mouseEnabled bool

	remotePressed map[wiimouse.Key]bool
	lastAccel     irpointer.FVec3
	lastAccelAt   time.Time
	lastTick      time.Time
	rawIR         [4]wiimouse.IRSlot
	lastFinal     *irpointer.Frame
	lastButtons   string

	defaultsApplied bool
}

// New builds a Driver bound to cfg. The config store is not read here;
// it is loaded by the caller and reapplied on every acquisition.
func New(cfg *wmconfig.Store, log zerolog.Logger) *Driver {
	cluster := irpointer.NewClusterStage()
	buttons := irpointer.NewButtonMapStage()
	unrotate := &irpointer.UnrotateStage{}
	predictive := irpointer.NewPredictiveStage()
	smoother := irpointer.NewSmootherStage()

	d := &Driver{
		log:           log,
		cfg:           cfg,
		cluster:       cluster,
		buttons:       buttons,
		unrotate:      unrotate,
		predictive:    predictive,
		smoother:      smoother,
		pipeline:      irpointer.NewPipeline(cluster, buttons, unrotate, predictive, smoother),
		calibration:   project.DefaultCalibration(),
		mouseEnabled:  true,
		remotePressed: make(map[wiimouse.Key]bool),
	}
	d.bindDefaultButtons()
	return d
}

// bindDefaultButtons installs the factory defaults: A clicks the left
// mouse button, B the right, both only while IR is visible.
func (d *Driver) bindDefaultButtons() {
	left, leftOK := virtdev.FindByName("BTN_LEFT")
	right, rightOK := virtdev.FindByName("BTN_RIGHT")
	middle, _ := virtdev.FindByName("BTN_MIDDLE")
	if leftOK {
		d.buttons.Bind(int(wiimouse.KeyA), true, int(left.Key))
	}
	if rightOK {
		d.buttons.Bind(int(wiimouse.KeyB), true, int(right.Key))
	}

	var ids []int
	for _, e := range []*virtdev.CatalogEntry{left, right, middle} {
		if e != nil {
			ids = append(ids, int(e.Key))
		}
	}
	d.smoother.MouseButtonIDs = ids
}

// acquire opens the Remote at syspath, lazily creates the virtual
// pointer device, and reapplies the current configuration.
func (d *Driver) acquire(syspath string) error {
	dev, err := wiimouse.NewRemote(syspath)
	if err != nil {
		return err
	}
	if err := dev.Open(wiimouse.IfaceCore | wiimouse.IfaceIR | wiimouse.IfaceAccel); err != nil {
		dev.Free()
		return err
	}

	if d.pointerDev == nil {
		ptr, err := virtdev.CreatePointer("wiimouse")
		if err != nil {
			dev.Close(wiimouse.IfaceAll)
			dev.Free()
			return err
		}
		d.pointerDev = ptr
		d.sink = &project.Sink{Calibration: d.calibration, Pointer: pointerWriter{ptr}, MouseEnabled: d.mouseEnabled}
	}

	d.device = dev
	d.remotePressed = make(map[wiimouse.Key]bool)
	d.rawIR = [4]wiimouse.IRSlot{}
	d.lastFinal = nil
	d.lastButtons = ""
	d.lastAccelAt = time.Time{}
	d.lastTick = time.Time{}
	d.state = stateRunning

	d.applyConfig()
	d.log.Info().Str("syspath", syspath).Msg("driver: remote acquired")
	return nil
}

// shutdown finishes the driver after the run loop exits: the Remote is
// released, the virtual pointer destroyed, and the control socket torn
// down, in that order.
func (d *Driver) shutdown() {
	d.release("shutting down")
	if d.pointerDev != nil {
		if err := d.pointerDev.Close(); err != nil {
			d.log.Warn().Err(err).Msg("driver: closing virtual pointer failed")
		}
		d.pointerDev = nil
		d.sink = nil
	}
	if d.control != nil {
		if err := d.control.Close(); err != nil {
			d.log.Warn().Err(err).Msg("driver: closing control socket failed")
		}
		d.control = nil
	}
}

// release closes the current device and returns to NoRemote. The
// virtual pointer is kept open across acquisitions so host-side key
// bindings made while no Remote is present survive the gap.
func (d *Driver) release(reason string) {
	if d.device != nil {
		d.device.Close(wiimouse.IfaceAll)
		d.device.Free()
		d.device = nil
	}
	d.state = stateNoRemote
	d.log.Info().Str("reason", reason).Msg("driver: remote released")
}

// applyConfig seeds config defaults from the driver's in-memory state on
// first acquisition, then unconditionally reapplies the config's current
// values, so any edit made to the config file while no Remote was present
// takes effect the moment one reappears.
func (d *Driver) applyConfig() {
	if !d.defaultsApplied {
		d.seedDefaults()
		d.defaultsApplied = true
	}
	d.reapplyConfig()
}

func (d *Driver) seedDefaults() {
	d.cfg.ProvideDefaultVector("calmatx", wmconfig.Vector3{d.calibration.CalX.X, d.calibration.CalX.Y, d.calibration.CalX.Z})
	d.cfg.ProvideDefaultVector("calmaty", wmconfig.Vector3{d.calibration.CalY.X, d.calibration.CalY.Y, d.calibration.CalY.Z})
	d.cfg.ProvideDefaultVector("screen_top_left", wmconfig.Vector3{d.calibration.ScreenTL.X, d.calibration.ScreenTL.Y, 0})
	d.cfg.ProvideDefaultVector("screen_bottom_right", wmconfig.Vector3{d.calibration.ScreenBR.X, d.calibration.ScreenBR.Y, 0})
	d.cfg.ProvideDefault("default_ir_distance", strconv.FormatFloat(d.cluster.DefaultDistance, 'f', -1, 64))
	d.cfg.ProvideDefaultVector("smoothing_clicked_released_delay", wmconfig.Vector3{d.smoother.PosMixClicked, d.smoother.PosMix, d.smoother.FreezeDelay})

	mappings := d.buttons.Mappings()
	for _, info := range buttonTable {
		for _, ir := range [2]bool{true, false} {
			keys := mappings[irpointer.MapKey{Button: int(info.key), IRVisible: ir}]
			if len(keys) == 0 {
				continue
			}
			d.cfg.ProvideDefault(d.buttonConfigKey(info, ir), formatKeyList(keys))
		}
	}
}

func (d *Driver) reapplyConfig() {
	calX, okX := d.cfg.Vector("calmatx")
	calY, okY := d.cfg.Vector("calmaty")
	if okX && okY {
		d.calibration.SetCalibration(
			project.Vec3{X: calX[0], Y: calX[1], Z: calX[2]},
			project.Vec3{X: calY[0], Y: calY[1], Z: calY[2]},
		)
	}

	tl, tlOK := d.cfg.Vector("screen_top_left")
	br, brOK := d.cfg.Vector("screen_bottom_right")
	if tlOK && brOK {
		d.calibration.SetScreenArea(project.Vec2{X: tl[0], Y: tl[1]}, project.Vec2{X: br[0], Y: br[1]})
	}

	if s, ok := d.cfg.String("default_ir_distance"); ok {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			d.cluster.DefaultDistance = v
		}
	}

	if v, ok := d.cfg.Vector("smoothing_clicked_released_delay"); ok {
		d.smoother.PosMixClicked = v[0]
		d.smoother.PosMix = v[1]
		d.smoother.FreezeDelay = v[2]
	}

	d.buttons.Clear()
	for _, info := range buttonTable {
		for _, ir := range [2]bool{true, false} {
			raw, ok := d.cfg.String(d.buttonConfigKey(info, ir))
			if !ok {
				continue
			}
			keys, err := parseKeyList(raw)
			if err != nil {
				d.log.Warn().Err(err).Str("key", d.buttonConfigKey(info, ir)).Msg("driver: invalid button binding in config")
				continue
			}
			d.buttons.Bind(int(info.key), ir, keys...)
		}
	}
}

// OpenControlSocket starts serving the control socket at path. It must be
// called before Run for control-socket commands to take effect.
func (d *Driver) OpenControlSocket(path string) error {
	cs, err := newControlSocket(path, d.log)
	if err != nil {
		return err
	}
	d.control = cs
	return nil
}

func (d *Driver) persistConfig() {
	if err := d.cfg.Write(); err != nil {
		d.log.Warn().Err(err).Msg("driver: failed to persist configuration")
	}
}
