package driver

import (
	"fmt"
	"strings"

	"github.com/friedelschoen/wiimouse/pkg/virtdev"
)

// buttonConfigKey is the config_file key a button's binding is stored
// under: button_<readable>, with an _offscreen suffix for the
// IRVisible=false half of the mapping.
func (d *Driver) buttonConfigKey(info buttonInfo, irVisible bool) string {
	key := "button_" + info.readable
	if !irVisible {
		key += "_offscreen"
	}
	return key
}

// formatKeyList renders a HostKey id list as a comma-separated list of
// catalog raw names, for config_file persistence. Ids with no catalog
// entry are dropped.
func formatKeyList(keys []int) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if e, ok := virtdev.FindByKey(virtdev.Key(k)); ok {
			names = append(names, e.RawName)
		}
	}
	return strings.Join(names, ",")
}

// parseKeyList is formatKeyList's inverse, used when loading a
// button_<name> config entry.
func parseKeyList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	keys := make([]int, 0, len(parts))
	for _, p := range parts {
		e, ok := virtdev.FindByName(strings.TrimSpace(p))
		if !ok {
			return nil, fmt.Errorf("unknown key %q", p)
		}
		keys = append(keys, int(e.Key))
	}
	return keys, nil
}
