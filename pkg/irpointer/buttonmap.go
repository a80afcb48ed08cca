package irpointer

// MapKey is the (remote button, pointing-state) pair a button mapping is
// keyed on, so the same physical button can bind to different host keys
// depending on whether the pointer is currently over the screen.
type MapKey struct {
	Button    int // wiimouse.Key, kept as a plain int so this package stays cgo-free
	IRVisible bool
}

// ButtonMapStage translates Remote button edges into HostKey edges,
// conditioned on whether IR is currently visible, using a "prior-output
// diff" so a host key is released the moment its source button is
// released or the moment IR visibility flips away from the mapping that
// asserted it.
type ButtonMapStage struct {
	mapping map[MapKey][]int // HostKey ids, in bind order

	lastPressed map[int]bool // HostKey id -> was pressed last output frame
}

// NewButtonMapStage returns a stage with an empty mapping.
func NewButtonMapStage() *ButtonMapStage {
	return &ButtonMapStage{
		mapping:     make(map[MapKey][]int),
		lastPressed: make(map[int]bool),
	}
}

// Bind replaces the host-key list for (button, irVisible), deduplicating.
func (b *ButtonMapStage) Bind(button int, irVisible bool, keys ...int) {
	seen := make(map[int]bool, len(keys))
	deduped := make([]int, 0, len(keys))
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			deduped = append(deduped, k)
		}
	}
	b.mapping[MapKey{button, irVisible}] = deduped
}

// Unbind clears the mapping for (button, irVisible).
func (b *ButtonMapStage) Unbind(button int, irVisible bool) {
	delete(b.mapping, MapKey{button, irVisible})
}

// Clear removes every binding.
func (b *ButtonMapStage) Clear() {
	b.mapping = make(map[MapKey][]int)
}

// Mappings returns every (button, irVisible, keys) binding currently set,
// for the control socket's keymapget command.
func (b *ButtonMapStage) Mappings() map[MapKey][]int {
	out := make(map[MapKey][]int, len(b.mapping))
	for k, v := range b.mapping {
		out[k] = append([]int(nil), v...)
	}
	return out
}

func (b *ButtonMapStage) Process(prev *Frame) *Frame {
	f := cloneFrame(prev)

	wasPressed := make(map[int]bool, len(b.lastPressed))
	for id := range b.lastPressed {
		wasPressed[id] = true
	}

	irVisible := prev.NValidIR > 0
	var out []ButtonState
	nowPressed := make(map[int]bool)

	for _, bs := range prev.Buttons {
		if !bs.valid() {
			break
		}
		if bs.Namespace != NamespaceRemote || !bs.Pressed {
			continue
		}
		for _, key := range b.mapping[MapKey{bs.ID, irVisible}] {
			if !nowPressed[key] {
				nowPressed[key] = true
				out = append(out, ButtonState{Namespace: NamespaceHostKey, ID: key, Pressed: true})
			}
			delete(wasPressed, key)
		}
	}

	for id := range wasPressed {
		out = append(out, ButtonState{Namespace: NamespaceHostKey, ID: id, Pressed: false})
	}

	setButtons(f, out)
	b.lastPressed = nowPressed
	return f
}
