package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/newtron-network/fgobj/pkg/fgobj"
	"github.com/newtron-network/fgobj/pkg/manifest"
)

// loadItems reads the manifest named by -f, applies the default VDOM and
// prompts for missing pre-shared keys when asked to.
func loadItems() ([]manifest.Item, error) {
	path := userSettings.ResolveManifest(manifestFile)
	m, err := manifest.ParseFile(path)
	if err != nil {
		return nil, err
	}
	if m.VDOM == "" {
		m.VDOM = defaultVDOM
	}
	if promptPSK {
		if err := fillPSK(m, readPSK); err != nil {
			return nil, err
		}
	}
	items, err := m.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// fillPSK sets the psk param of every phase1 entry that lacks one, asking
// read for the value.
func fillPSK(m *manifest.Manifest, read func(tunnel string) (string, error)) error {
	for i := range m.Objects {
		e := &m.Objects[i]
		if e.Kind != string(fgobj.KindPhase1) {
			continue
		}
		if _, ok := e.Params["psk"]; ok {
			continue
		}
		name, _ := e.Params["name"].(string)
		psk, err := read(name)
		if err != nil {
			return fmt.Errorf("reading pre-shared key for %s: %w", name, err)
		}
		if e.Params == nil {
			e.Params = map[string]interface{}{}
		}
		e.Params["psk"] = psk
	}
	return nil
}

func readPSK(tunnel string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("stdin is not a terminal")
	}
	fmt.Fprintf(os.Stderr, "Pre-shared key for %s: ", tunnel)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// itemOps splits items into objects and their per-entry operations.
func itemOps(items []manifest.Item) ([]fgobj.Object, []fgobj.Op) {
	ops := make([]fgobj.Op, len(items))
	for i, it := range items {
		ops[i] = it.Op
	}
	return manifest.Objects(items), ops
}
