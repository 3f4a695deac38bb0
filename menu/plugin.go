package menu

import "github.com/iw2rmb/selmenu/editor"

// Plugin returns an editor plugin that creates one Controller per editor.
func Plugin(opts Options) editor.Plugin {
	return editor.PluginFunc(func(v editor.View) (editor.PluginView, error) {
		c, err := New(v, opts)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}
