package vidmode

import (
	"fmt"
)

// VideoTag marks that a video system has been installed into the App.
// Exactly one may own the surface.
type VideoTag struct {
	Name string
}

// ensureSingleVideo enforces the single-owner invariant on the surface.
// Installing the video module for the same app name again is a no-op and
// reports true; a video module for another app name panics.
func ensureSingleVideo(app *App, name string) bool {
	if app == nil {
		panic("ensureSingleVideo: app is nil")
	}
	if tag, ok := Resource[VideoTag](app); ok {
		if tag.Name != name {
			app.Logger().Errorf("Multiple video systems installed: %s and %s", tag.Name, name)
			panic(fmt.Sprintf("Multiple video systems installed: %s and %s", tag.Name, name))
		}
		return true
	}
	app.addResources(&VideoTag{Name: name})
	return false
}
